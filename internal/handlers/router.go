package handlers

import (
	"net/http"

	"medreports-backend/internal/middleware"
	"medreports-backend/utils/response"
)

func NewRouter(auth *AuthHandler, reports *ReportHandler, users *UserHandler, mw *middleware.AuthMiddleware) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", health)

	router.HandleFunc("POST /api/auth/register", auth.Register)
	router.HandleFunc("POST /api/auth/login", auth.Login)
	router.Handle("GET /api/auth/me", mw.RequireAuth(http.HandlerFunc(auth.Me)))

	router.Handle("POST /api/reports/upload", mw.RequireAdmin(http.HandlerFunc(reports.Upload)))
	router.Handle("GET /api/reports", mw.RequireAuth(http.HandlerFunc(reports.List)))
	router.Handle("GET /api/reports/{id}/download", mw.RequireAuth(http.HandlerFunc(reports.Download)))
	router.Handle("GET /api/reports/{id}/preview", mw.RequireAuth(http.HandlerFunc(reports.Preview)))
	router.Handle("DELETE /api/reports/{id}", mw.RequireAdmin(http.HandlerFunc(reports.Delete)))

	router.Handle("GET /api/users", mw.RequireAdmin(http.HandlerFunc(users.List)))

	return router
}

func health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"message": "Medical report server is running",
	})
}
