package handlers

import (
	"net/http"

	_ "github.com/aibaljacob/prodigi/docs"
	adminhandlers "github.com/aibaljacob/prodigi/internal/handlers/admin"
	authhandlers "github.com/aibaljacob/prodigi/internal/handlers/auth"
	carthandlers "github.com/aibaljacob/prodigi/internal/handlers/cart"
	cataloghandlers "github.com/aibaljacob/prodigi/internal/handlers/catalog"
	checkouthandlers "github.com/aibaljacob/prodigi/internal/handlers/checkout"
	downloadhandlers "github.com/aibaljacob/prodigi/internal/handlers/download"
	reviewhandlers "github.com/aibaljacob/prodigi/internal/handlers/review"
	"github.com/aibaljacob/prodigi/internal/service"
	"github.com/aibaljacob/prodigi/internal/storage"
	"github.com/aibaljacob/prodigi/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	Categories(w http.ResponseWriter, r *http.Request)
	Products(w http.ResponseWriter, r *http.Request)
	Product(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type CheckoutHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
	Purchases(w http.ResponseWriter, r *http.Request)
}

type DownloadHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Users(w http.ResponseWriter, r *http.Request)
	BanUser(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
	UpdateCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
	ApproveProduct(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CatalogHandler  CatalogHandler
	CartHandler     CartHandler
	CheckoutHandler CheckoutHandler
	DownloadHandler DownloadHandler
	ReviewHandler   ReviewHandler
	AdminHandler    AdminHandler
}

func New(s *service.Services, fileStore storage.FileStore) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CatalogHandler:  cataloghandlers.New(s.CatalogService),
		CartHandler:     carthandlers.New(s.CartService),
		CheckoutHandler: checkouthandlers.New(s.CheckoutService),
		DownloadHandler: downloadhandlers.New(s.DeliveryService, fileStore),
		ReviewHandler:   reviewhandlers.New(s.ReviewService),
		AdminHandler:    adminhandlers.New(s.AdminService, s.CatalogService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Get("/categories", h.CatalogHandler.Categories)
		r.Get("/products", h.CatalogHandler.Products)
		r.Get("/products/{slug}", h.CatalogHandler.Product)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.CartHandler.Get)
				r.Post("/add", h.CartHandler.Add)
				r.Post("/remove", h.CartHandler.Remove)
				r.Post("/clear", h.CartHandler.Clear)
			})
			r.Route("/checkout", func(r chi.Router) {
				r.Post("/create-order", h.CheckoutHandler.CreateOrder)
				r.Post("/verify", h.CheckoutHandler.VerifyPayment)
			})
			r.Get("/purchases", h.CheckoutHandler.Purchases)
			r.Post("/reviews", h.ReviewHandler.Add)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
			r.Route("/admin", func(r chi.Router) {
				r.Get("/dashboard", h.AdminHandler.Dashboard)
				r.Get("/users", h.AdminHandler.Users)
				r.Post("/users/{id}/ban", h.AdminHandler.BanUser)
				r.Get("/transactions", h.AdminHandler.Transactions)
				r.Post("/categories", h.AdminHandler.CreateCategory)
				r.Put("/categories/{id}", h.AdminHandler.UpdateCategory)
				r.Delete("/categories/{id}", h.AdminHandler.DeleteCategory)
				r.Post("/products", h.AdminHandler.CreateProduct)
				r.Put("/products/{id}", h.AdminHandler.UpdateProduct)
				r.Delete("/products/{id}", h.AdminHandler.DeleteProduct)
				r.Post("/products/{id}/approve", h.AdminHandler.ApproveProduct)
			})
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/download", h.DownloadHandler.Download)
	})

	return r
}
