package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"miblog/cmd/app"
	"miblog/internal/config"
	handlers "miblog/internal/handler"
	"miblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	// setting up routes
	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)

	r.HandleFunc("/api/blogs", handler.GetBlogs).Methods(http.MethodGet)
	r.HandleFunc("/api/blogs", handler.CreateBlog).Methods(http.MethodPost)
	r.HandleFunc("/api/blogs/{blogId:[0-9]+}", handler.GetBlog).Methods(http.MethodGet)

	r.HandleFunc("/api/blogs/{blogId:[0-9]+}/posts", handler.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/blogs/{blogId:[0-9]+}/posts", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/blogs/{blogId:[0-9]+}/posts/{postId:[0-9]+}", handler.GetPost).Methods(http.MethodGet)

	r.HandleFunc("/api/blogs/{blogId:[0-9]+}/subscription", handler.CheckSubscription).Methods(http.MethodGet)
	r.HandleFunc("/api/blogs/{blogId:[0-9]+}/subscribe", handler.Subscribe).Methods(http.MethodPost)
	r.HandleFunc("/api/blogs/{blogId:[0-9]+}/subscribe", handler.Unsubscribe).Methods(http.MethodDelete)

	r.HandleFunc("/api/user/subscriptions", handler.GetMySubscriptions).Methods(http.MethodGet)

	r.HandleFunc("/api/images", handler.UploadImage).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.IdentityMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
