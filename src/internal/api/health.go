package api

import (
	"fmt"
	"net/http"
	"os"
)

// CheckHealth verifies the configuration and the mail root.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthCheckResponse{
		Healthy: true,
		Checks:  make(map[string]CheckResult),
	}

	if err := h.cfg.ValidateConfig(); err != nil {
		response.Healthy = false
		response.Checks["config_validation"] = CheckResult{
			Passed:  false,
			Message: "Configuration validation failed: " + err.Error(),
		}
	} else {
		response.Checks["config_validation"] = CheckResult{
			Passed:  true,
			Message: "Configuration is valid",
		}
	}

	root := h.cfg.GetAbsSourcePath()
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		response.Healthy = false
		response.Checks["source_path"] = CheckResult{
			Passed:  false,
			Message: fmt.Sprintf("Mail root %s is not accessible", root),
		}
	} else if err := h.mgr.Refresh(); err != nil {
		response.Healthy = false
		response.Checks["source_path"] = CheckResult{
			Passed:  false,
			Message: "Failed to read users: " + err.Error(),
		}
	} else {
		response.Checks["source_path"] = CheckResult{
			Passed:  true,
			Message: fmt.Sprintf("%d user(s) found in %s", len(h.mgr.Users()), root),
		}
	}

	status := http.StatusOK
	if !response.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, response)
}
