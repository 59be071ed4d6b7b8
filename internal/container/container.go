package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/carhub/internal/config"
	"github.com/joshua-takyi/carhub/internal/models"
	"github.com/joshua-takyi/carhub/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	MongoDBClient *mongo.Client
	Repo          *models.MongodbRepo

	ListingService *services.ListingService
	BookingService *services.BookingService
	UserService    *services.UserService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoDBClient *mongo.Client,
	cld *cloudinary.Cloudinary,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		MongoDBClient:  mongoDBClient,
		Repo:           repo,
		ListingService: services.NewListingService(repo, cld),
		BookingService: services.NewBookingService(repo),
		UserService:    services.NewUserService(repo),
	}
}
