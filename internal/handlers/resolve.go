package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-dev/skillbridge/internal/store"
)

type Resolve struct {
	store *store.Store
}

func NewResolve(s *store.Store) *Resolve {
	return &Resolve{store: s}
}

// Name maps /id/{username} or /id/projects/{project name} to a numeric id.
func (h *Resolve) Name(ctx *gin.Context) {
	name := strings.TrimPrefix(ctx.Param("name"), "/")

	var (
		id  uint
		err error
	)

	if projectName, isProject := strings.CutPrefix(name, "projects/"); isProject {
		id, err = h.store.ResolveProjectName(projectName)
	} else {
		id, err = h.store.ResolveUsername(name)
	}

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
