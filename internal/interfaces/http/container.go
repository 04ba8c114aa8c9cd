package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "helpdesk/internal/application/auth/usecases"
	knowledgeUsecases "helpdesk/internal/application/knowledge/usecases"
	notificationUsecases "helpdesk/internal/application/notification/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/repository/memory"
	"helpdesk/internal/interfaces/http/handlers"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	markdownsvc "helpdesk/internal/shared/services/markdown"
)

const eventBufferSize = 256

// repositories groups the entity stores behind their domain interfaces so
// the rest of the wiring does not care which driver backs them.
type repositories struct {
	tickets        ticket.Repository
	comments       ticket.CommentRepository
	ratings        ticket.RatingRepository
	users          user.Repository
	notifications  notification.Repository
	articles       knowledge.Repository
	articleRatings knowledge.RatingRepository
}

// Container wires repositories, use cases, handlers, and middleware, and
// owns the lifecycle of the background pieces (event dispatcher, redis).
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	db     *gorm.DB
	redis  *redis.Client

	dispatcher *events.InMemoryEventDispatcher
	repos      *repositories

	jwtSvc *auth.JWTService

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter

	ticketHandler       *tickethandlers.TicketHandler
	userHandler         *handlers.UserHandler
	notificationHandler *handlers.NotificationHandler
	knowledgeHandler    *handlers.KnowledgeHandler
	authHandler         *handlers.AuthHandler
}

// NewContainer builds the full dependency graph for the API server.
func NewContainer(cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
	}

	if err := c.setupRepositories(); err != nil {
		return nil, err
	}

	c.setupRedis()
	c.setupDispatcher()
	c.setupHandlers()

	return c, nil
}

func (c *Container) setupRepositories() error {
	if c.cfg.Database.Driver == "memory" {
		c.log.Infow("using in-memory entity store")
		c.repos = &repositories{
			tickets:        memory.NewTicketRepository(),
			comments:       memory.NewCommentRepository(),
			ratings:        memory.NewRatingRepository(),
			users:          memory.NewUserRepository(),
			notifications:  memory.NewNotificationRepository(),
			articles:       memory.NewArticleRepository(),
			articleRatings: memory.NewArticleRatingRepository(),
		}
		return nil
	}

	// The server command may have connected already for migrations.
	c.db = database.Get()
	if c.db == nil {
		if err := database.Init(&c.cfg.Database); err != nil {
			return err
		}
		c.db = database.Get()
	}

	c.repos = &repositories{
		tickets:        repository.NewTicketRepository(c.db),
		comments:       repository.NewCommentRepository(c.db),
		ratings:        repository.NewRatingRepository(c.db),
		users:          repository.NewUserRepository(c.db),
		notifications:  repository.NewNotificationRepository(c.db),
		articles:       repository.NewArticleRepository(c.db),
		articleRatings: repository.NewArticleRatingRepository(c.db),
	}
	return nil
}

func (c *Container) setupRedis() {
	if !c.cfg.Redis.Enabled {
		return
	}

	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		c.log.Warnw("redis unreachable, continuing without cache", "error", err)
		c.redis = nil
	}
}

func (c *Container) setupDispatcher() {
	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, c.log)
}

func (c *Container) setupHandlers() {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	mailer := email.NewSMTPEmailSender(cfg.Email)
	markdownSvc := markdownsvc.NewService()

	var unreadCache notificationUsecases.UnreadCountCache
	if c.redis != nil {
		unreadCache = cache.NewRedisUnreadCountCache(c.redis, log)
	}

	// Seed ticket codes past anything already issued.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	seq, err := repos.tickets.HighestCodeSequence(ctx, time.Now().UTC().Year())
	if err != nil {
		log.Warnw("failed to read highest ticket code, starting sequence at zero", "error", err)
		seq = 0
	}
	codeGenerator := ticket.NewDefaultCodeGenerator(seq)

	// Memory stores delete atomically under their own lock; only the SQL
	// path needs a real transaction around multi-row cascades.
	var txManager ticketUsecases.TransactionManager
	if c.db != nil {
		txManager = db.NewTransactionManager(c.db)
	}

	// Ticket use cases
	createTicketUC := ticketUsecases.NewCreateTicketUseCase(repos.tickets, codeGenerator, c.dispatcher, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(repos.tickets, c.dispatcher, log)
	changeStatusUC := ticketUsecases.NewChangeStatusUseCase(repos.tickets, c.dispatcher, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(repos.tickets, repos.comments, repos.ratings, txManager, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(repos.tickets, repos.comments, repos.ratings, repos.users, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(repos.tickets, repos.users, log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(repos.tickets, repos.comments, c.dispatcher, log)
	listCommentsUC := ticketUsecases.NewListCommentsUseCase(repos.tickets, repos.comments, log)
	deleteCommentUC := ticketUsecases.NewDeleteCommentUseCase(repos.comments, log)
	rateTicketUC := ticketUsecases.NewRateTicketUseCase(repos.tickets, repos.ratings, c.dispatcher, log)
	getTicketRatingUC := ticketUsecases.NewGetTicketRatingUseCase(repos.tickets, repos.ratings, log)
	getStatsUC := ticketUsecases.NewGetTicketStatsUseCase(repos.tickets, log)
	listByDateRangeUC := ticketUsecases.NewListByDateRangeUseCase(repos.tickets, log)

	c.ticketHandler = tickethandlers.NewTicketHandler(
		createTicketUC, updateTicketUC, changeStatusUC, deleteTicketUC,
		getTicketUC, listTicketsUC, addCommentUC, listCommentsUC,
		deleteCommentUC, rateTicketUC, getTicketRatingUC, getStatsUC,
		listByDateRangeUC, log,
	)

	// User use cases
	createUserUC := userUsecases.NewCreateUserUseCase(repos.users, hasher, log)
	updateUserUC := userUsecases.NewUpdateUserUseCase(repos.users, hasher, log)
	deleteUserUC := userUsecases.NewDeleteUserUseCase(repos.users, repos.tickets, repos.notifications, log)
	getUserUC := userUsecases.NewGetUserUseCase(repos.users, log)
	listUsersUC := userUsecases.NewListUsersUseCase(repos.users, log)

	c.userHandler = handlers.NewUserHandler(createUserUC, updateUserUC, deleteUserUC, getUserUC, listUsersUC, log)

	// Notification use cases
	createNotificationUC := notificationUsecases.NewCreateNotificationUseCase(repos.notifications, unreadCache, log)
	listNotificationsUC := notificationUsecases.NewListNotificationsUseCase(repos.notifications, log)
	unreadCountUC := notificationUsecases.NewUnreadCountUseCase(repos.notifications, unreadCache, log)
	markAsReadUC := notificationUsecases.NewMarkAsReadUseCase(repos.notifications, unreadCache, log)
	markAllAsReadUC := notificationUsecases.NewMarkAllAsReadUseCase(repos.notifications, unreadCache, log)
	deleteNotificationUC := notificationUsecases.NewDeleteNotificationUseCase(repos.notifications, unreadCache, log)

	c.notificationHandler = handlers.NewNotificationHandler(
		listNotificationsUC, unreadCountUC, markAsReadUC, markAllAsReadUC, deleteNotificationUC, log,
	)

	// Ticket lifecycle events fan out into notifications.
	eventHandlers := notificationUsecases.NewTicketEventHandlers(createNotificationUC, log)
	if err := eventHandlers.Register(c.dispatcher); err != nil {
		log.Errorw("failed to register ticket event handlers", "error", err)
	}

	// Knowledge base use cases
	createArticleUC := knowledgeUsecases.NewCreateArticleUseCase(repos.articles, log)
	updateArticleUC := knowledgeUsecases.NewUpdateArticleUseCase(repos.articles, log)
	deleteArticleUC := knowledgeUsecases.NewDeleteArticleUseCase(repos.articles, repos.articleRatings, log)
	getArticleUC := knowledgeUsecases.NewGetArticleUseCase(repos.articles, repos.articleRatings, repos.users, markdownSvc, log)
	listArticlesUC := knowledgeUsecases.NewListArticlesUseCase(repos.articles, log)
	rateArticleUC := knowledgeUsecases.NewRateArticleUseCase(repos.articles, repos.articleRatings, log)

	c.knowledgeHandler = handlers.NewKnowledgeHandler(
		createArticleUC, updateArticleUC, deleteArticleUC, getArticleUC, listArticlesUC, rateArticleUC, log,
	)

	// Auth use cases
	loginUC := authUsecases.NewLoginUseCase(repos.users, hasher, c.jwtSvc, log)
	signupUC := authUsecases.NewSignupUseCase(createUserUC, log)
	verifyEmailUC := authUsecases.NewVerifyEmailUseCase(log)
	forgotPasswordUC := authUsecases.NewForgotPasswordUseCase(repos.users, mailer, log)
	verifyResetCodeUC := authUsecases.NewVerifyResetCodeUseCase(log)
	resetPasswordUC := authUsecases.NewResetPasswordUseCase(repos.users, hasher, log)

	c.authHandler = handlers.NewAuthHandler(
		loginUC, signupUC, verifyEmailUC, forgotPasswordUC, verifyResetCodeUC, resetPasswordUC, log,
	)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	var limiterClient *redis.Client
	if cfg.RateLimit.Enabled {
		limiterClient = c.redis
	}
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	c.rateLimiter = middleware.NewRateLimiter(limiterClient, cfg.RateLimit.Requests, window)
}

// Start launches the background event dispatcher.
func (c *Container) Start() error {
	return c.dispatcher.Start()
}

// Shutdown stops background components and closes external connections.
func (c *Container) Shutdown(ctx context.Context) error {
	if err := c.dispatcher.Stop(); err != nil {
		c.log.Warnw("event dispatcher stop failed", "error", err)
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("redis close failed", "error", err)
		}
	}

	if c.db != nil {
		return database.Close()
	}
	return nil
}
