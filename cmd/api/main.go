package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"catastro-insights-go/internal/aggregator"
	"catastro-insights-go/internal/config"
	"catastro-insights-go/internal/dataset"
	"catastro-insights-go/internal/logger"
	"catastro-insights-go/internal/mlclient"
	"catastro-insights-go/internal/report"
	"catastro-insights-go/internal/types"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	log.WithField("service", "catastro-insights-go").Info("starting service")

	// probe the dataset once so a bad path shows up at startup, not on the
	// first dashboard load
	log.WithField("dataset_path", cfg.DatasetPath).Info("probing dataset")
	if records, err := dataset.Load(cfg.DatasetPath); err != nil {
		log.WithError(err).Warn("dataset unreadable at startup, views will serve empty results")
	} else {
		log.WithField("records", len(records)).Info("dataset probe ok")
	}

	ml := mlclient.New(cfg.MLBackendURL)
	mapEngine := aggregator.NewMapEngine(nil, cfg.MaxMapPoints)

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Debug("health check")
		fmt.Fprint(w, "ok")
	})

	// executive dashboard aggregation
	mux.HandleFunc("GET /api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "dashboard")
		start := time.Now()
		data := aggregator.Dashboard(cfg.DatasetPath)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("dashboard served")
		writeJSON(w, http.StatusOK, data)
	})

	// risk map with optional department filter pushed into the scan
	mux.HandleFunc("GET /api/map", func(w http.ResponseWriter, r *http.Request) {
		department := r.URL.Query().Get("departamento")
		if department == "" {
			department = aggregator.AllDepartments
		}
		reqLog := logger.New().WithRequest(r).WithField("handler", "map").WithField("departamento", department)
		start := time.Now()
		data := mapEngine.Aggregate(cfg.DatasetPath, department)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("points", len(data.Points)).Info("map served")
		writeJSON(w, http.StatusOK, data)
	})

	// statistics view aggregates
	mux.HandleFunc("GET /api/statistics", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "statistics").Info("statistics served")
		writeJSON(w, http.StatusOK, aggregator.Statistics(cfg.DatasetPath))
	})

	// statistics as a downloadable workbook
	mux.HandleFunc("GET /api/statistics/export", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "statistics_export")
		f, err := report.StatisticsWorkbook(aggregator.Statistics(cfg.DatasetPath))
		if err != nil {
			reqLog.WithError(err).Error("workbook build failed")
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="estadisticas_anomalias.xlsx"`)
		if err := f.Write(w); err != nil {
			reqLog.WithError(err).Error("workbook write failed")
			return
		}
		reqLog.Info("statistics workbook served")
	})

	// single recent-anomaly detail
	mux.HandleFunc("GET /api/anomalies/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		reqLog := logger.New().WithRequest(r).WithField("handler", "anomaly_detail").WithField("id", id)
		data := aggregator.Dashboard(cfg.DatasetPath)
		for _, a := range data.Anomalies {
			if a.ID == id {
				reqLog.Info("anomaly detail served")
				writeJSON(w, http.StatusOK, a)
				return
			}
		}
		reqLog.Warn("anomaly not found")
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "anomalía no encontrada"})
	})

	// live prediction proxy to the ML backend
	mux.HandleFunc("POST /api/predict", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "predict")
		var in types.PropertyInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			reqLog.WithError(err).Warn("invalid prediction input")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		start := time.Now()
		res, err := ml.FullPrediction(r.Context(), in)
		reqLog = reqLog.WithField("duration_ms", time.Since(start).Milliseconds())
		if err != nil {
			reqLog.WithError(err).Error("prediction failed")
			http.Error(w, "prediction backend unavailable", http.StatusBadGateway)
			return
		}
		reqLog.WithField("rango_precio", res.Classification.PriceRange).Info("prediction served")
		writeJSON(w, http.StatusOK, res)
	})

	// assistant chat proxy
	mux.HandleFunc("POST /api/chat", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "chat")
		var in types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Message == "" {
			reqLog.Warn("invalid chat message")
			http.Error(w, "missing message", http.StatusBadRequest)
			return
		}
		res, err := ml.Chat(r.Context(), in.Message)
		if err != nil {
			reqLog.WithError(err).Error("chat failed")
			http.Error(w, "chat backend unavailable", http.StatusBadGateway)
			return
		}
		reqLog.Info("chat served")
		writeJSON(w, http.StatusOK, res)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}
