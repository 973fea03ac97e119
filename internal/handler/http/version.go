package http

import (
	"net/http"

	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	resp := models.VersionResponse{
		BuildVersion: h.services.AppInfo.GetAppVersion(r.Context()),
		BuildDate:    h.build.BuildDate(),
		BuildCommit:  h.build.BuildCommit(),
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
