package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every API route and the middleware chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/test", h.usersTest)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(h.auth).Get("/current", h.current)
	})

	router.Route("/api/profile", func(r chi.Router) {
		// routes without authorization
		r.Get("/test", h.profileTest)
		r.Get("/all", h.listProfiles)
		r.Get("/handle/{handle}", h.getProfileByHandle)
		r.Get("/user/{user_id}", h.getProfileByUserID)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.getCurrentProfile)
			r.Post("/", h.saveProfile)
			r.Delete("/", h.deleteAccount)
			r.Post("/experience", h.addExperience)
			r.Delete("/experience/{exp_id}", h.deleteExperience)
			r.Post("/education", h.addEducation)
			r.Delete("/education/{edu_id}", h.deleteEducation)
		})
	})

	router.Route("/api/posts", func(r chi.Router) {
		// routes without authorization
		r.Get("/test", h.postsTest)
		r.Get("/", h.listPosts)
		r.Get("/{id}", h.getPost)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createPost)
			r.Delete("/{id}", h.deletePost)
			r.Post("/like/{id}", h.likePost)
			r.Post("/unlike/{id}", h.unlikePost)
			r.Post("/comment/{id}", h.addComment)
			r.Delete("/comment/{id}/{comment_id}", h.deleteComment)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
