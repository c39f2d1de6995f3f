package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/recruiting-api/internal/core/ports"
)

// SkillHandler serves the skill catalog.
type SkillHandler struct {
	skillService ports.SkillService
}

func NewSkillHandler(skillService ports.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// ListSkills returns the skill catalog.
//
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listSkillsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/skills [get]
func (h *SkillHandler) ListSkills(c echo.Context) error {
	skills, err := h.skillService.ListSkills(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]skillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, skillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return c.JSON(http.StatusOK, listSkillsResponse{Data: out})
}
