package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"github.com/maddsua/frp-admin/model"
)

// frp-mock fakes the frp admin API surface for local testing
// of the client library and the frpadm cli.
func main() {

	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := LoadConfig("")
	if err != nil {
		slog.Error("Load config",
			slog.String("err", err.Error()))
		os.Exit(1)
	}

	state := mockState{configText: cfg.ConfigText}

	var writeJSON = func(wrt http.ResponseWriter, val any) {
		wrt.Header().Set("Content-Type", "application/json")
		json.NewEncoder(wrt).Encode(val)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/status", func(wrt http.ResponseWriter, req *http.Request) {

		status := model.ClientStatus{}
		for _, entry := range cfg.Proxies {
			status[entry.Type] = append(status[entry.Type], model.ProxyStatus{
				Name:       entry.Name,
				Type:       entry.Type,
				Status:     entry.Status,
				LocalAddr:  entry.LocalAddr,
				RemoteAddr: entry.RemoteAddr,
			})
		}

		writeJSON(wrt, status)
	})

	mux.HandleFunc("GET /api/config", func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Set("Content-Type", "text/plain")
		wrt.Write([]byte(state.ConfigText()))
	})

	mux.HandleFunc("PUT /api/config", func(wrt http.ResponseWriter, req *http.Request) {

		data, err := io.ReadAll(req.Body)
		if err != nil {
			http.Error(wrt, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}

		state.SetConfigText(string(data))
	})

	mux.HandleFunc("GET /api/reload", func(wrt http.ResponseWriter, req *http.Request) {
		slog.Info("Reload requested")
	})

	mux.HandleFunc("POST /api/stop", func(wrt http.ResponseWriter, req *http.Request) {
		slog.Info("Stop requested")
	})

	mux.HandleFunc("GET /api/serverinfo", func(wrt http.ResponseWriter, req *http.Request) {

		info := model.ServerInfo{
			Version:         cfg.Server.Version,
			BindPort:        cfg.Server.BindPort,
			ClientCounts:    1,
			ProxyTypeCounts: map[string]int64{},
		}

		for _, entry := range cfg.Proxies {
			info.ProxyTypeCounts[entry.Type]++
			info.CurConns += entry.CurConns
		}

		writeJSON(wrt, info)
	})

	mux.HandleFunc("GET /api/proxy/{type}", func(wrt http.ResponseWriter, req *http.Request) {

		list := model.ProxyList{Proxies: []model.ProxyInfo{}}

		for _, entry := range cfg.Proxies {

			if entry.Type != req.PathValue("type") {
				continue
			}

			var trafficIn, trafficOut int64
			if len(entry.TrafficIn) > 0 {
				trafficIn = entry.TrafficIn[0]
			}
			if len(entry.TrafficOut) > 0 {
				trafficOut = entry.TrafficOut[0]
			}

			list.Proxies = append(list.Proxies, model.ProxyInfo{
				Name:            entry.Name,
				Status:          entry.Status,
				CurConns:        entry.CurConns,
				TodayTrafficIn:  trafficIn,
				TodayTrafficOut: trafficOut,
			})
		}

		writeJSON(wrt, list)
	})

	mux.HandleFunc("GET /api/traffic/{name}", func(wrt http.ResponseWriter, req *http.Request) {

		for _, entry := range cfg.Proxies {

			if entry.Name != req.PathValue("name") {
				continue
			}

			writeJSON(wrt, model.ProxyTraffic{
				Name:       entry.Name,
				TrafficIn:  entry.TrafficIn,
				TrafficOut: entry.TrafficOut,
			})
			return
		}

		http.Error(wrt, "proxy not found", http.StatusNotFound)
	})

	srv := http.Server{
		Addr:    cfg.ListenAddr,
		Handler: withAccessLog(withBasicAuth(mux, cfg.User, cfg.Password)),
	}

	errCh := make(chan error, 1)
	exitCh := make(chan os.Signal, 1)
	signal.Notify(exitCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Listening",
		slog.String("addr", srv.Addr),
		slog.String("cfg", cfg.location))

	select {
	case <-exitCh:
		srv.Close()
		slog.Warn("Shutting down...")
	case err := <-errCh:
		slog.Error("Server error",
			slog.String("err", err.Error()))
		os.Exit(1)
	}
}

type mockState struct {
	mtx        sync.Mutex
	configText string
}

func (state *mockState) ConfigText() string {
	state.mtx.Lock()
	defer state.mtx.Unlock()
	return state.configText
}

func (state *mockState) SetConfigText(val string) {
	state.mtx.Lock()
	defer state.mtx.Unlock()
	state.configText = val
}

func withBasicAuth(next http.Handler, user string, password string) http.Handler {

	return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {

		if user != "" {

			reqUser, reqPassword, ok := req.BasicAuth()
			if !ok || reqUser != user || reqPassword != password {
				wrt.Header().Set("WWW-Authenticate", `Basic realm="frp-mock"`)
				http.Error(wrt, "unauthorized", http.StatusUnauthorized)
				return
			}
		}

		next.ServeHTTP(wrt, req)
	})
}

func withAccessLog(next http.Handler) http.Handler {

	return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {

		slog.Debug("Request",
			slog.String("id", uuid.NewString()),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path))

		next.ServeHTTP(wrt, req)
	})
}
