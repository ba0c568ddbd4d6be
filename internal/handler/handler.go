package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"miblog/internal/config"
	"miblog/internal/service"
)

// HealthChecker - то, что умеет ответить жив ли storage-слой
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	AuthService         service.AuthService
	BlogService         service.BlogService
	SubscriptionService service.SubscriptionService
	ImageService        service.ImageService
	DB                  HealthChecker
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(services *service.Service, db HealthChecker, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:         services.Auth,
		BlogService:         services.Blog,
		SubscriptionService: services.Subscription,
		ImageService:        services.Image,
		DB:                  db,
		Cfg:                 config,
		Validate:            validator.New(),
	}
}

// viewerID достаёт id пользователя, положенный в контекст identity-middleware
func viewerID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value("userID").(int64)
	return userID, ok
}

// pathID разбирает числовой параметр пути gorilla/mux
func pathID(r *http.Request, name string) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars[name], 10, 64)
}
