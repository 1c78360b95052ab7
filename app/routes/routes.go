package routes

import (
	"net/http"
	"path/filepath"

	"inkwell/app/cache"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SetupRoutes wires repositories, services and controllers onto a
// router. basePath locates templates and static assets, which lets
// tests run from a temp directory.
func SetupRoutes(db *badger.DB, store cache.Store, logger *zap.SugaredLogger, basePath string) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	tagRepo := repositories.NewBadgerTagRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	postService := services.NewPostService(postRepo, commentRepo, tagRepo, userRepo, logger)
	searchService := services.NewSearchService(postRepo, tagRepo, userRepo, logger)
	commentService := services.NewCommentService(commentRepo, postRepo, tagRepo, userRepo, logger)
	homeService := services.NewHomeService(postRepo, tagRepo, userRepo, store, logger)

	postController := controllers.NewPostController(postService, searchService, basePath)
	commentController := controllers.NewCommentController(commentService, basePath)
	searchController := controllers.NewSearchController(searchService, logger)
	homeController := controllers.NewHomeController(homeService, basePath)

	// Serve static files
	staticDir := filepath.Join(basePath, "static")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Web routes
	router.HandleFunc("/", homeController.Home).Methods("GET")
	router.HandleFunc("/search", searchController.Search).Methods("GET")

	// Posts web endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/new", postController.New).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Comments web endpoints
	posts.HandleFunc("/{postId:[0-9]+}/comments/new", commentController.New).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")
	router.HandleFunc("/comments/{id:[0-9]+}", commentController.Edit).Methods("PUT")
	router.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	api.HandleFunc("/search", searchController.Search).Methods("GET")
	api.HandleFunc("/home", homeController.Home).Methods("GET")

	// Posts API endpoints
	apiPosts := api.PathPrefix("/posts").Subrouter()
	apiPosts.HandleFunc("", postController.Index).Methods("GET")
	apiPosts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	apiPosts.HandleFunc("", postController.Create).Methods("POST")
	apiPosts.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	apiPosts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Comments API endpoints
	apiPosts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	apiPosts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}", commentController.Edit).Methods("PUT")
	api.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
