package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/sHooPmyWooP/roundnet/controller"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

// AdminAuth holds the BasicAuth credentials protecting the /admin routes.
type AdminAuth struct {
	User     string
	Password string
}

func NewServer(port int, ctrl controller.C, admin AdminAuth) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, admin)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"date":     dateFormatter,
				"datetime": dateTimeFormatter,
				"duration": durationFormatter,
				"pct":      percentageFormatter,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02")
}

func dateTimeFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format(time.DateTime)
}

func durationFormatter(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func percentageFormatter(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
