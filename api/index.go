package handler

import (
	"net/http"

	"jumatrek/config"
	"jumatrek/di"
	"jumatrek/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()
	app.Handler().ServeHTTP(w, r)
}
