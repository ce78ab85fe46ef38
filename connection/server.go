package connection

import (
	"context"
	"log"

	"codewithbuder/controller/admin"
	"codewithbuder/controller/auth"
	"codewithbuder/controller/blog"
	"codewithbuder/controller/contact"
	"codewithbuder/controller/course"
	"codewithbuder/services"
	"codewithbuder/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// StartServer builds the process-scoped services once (store, sync hub,
// auth provider, session binder, write gateway) and passes them to every
// controller that needs them. The three collection subscriptions and the
// session/profile subscriptions live for the whole process and are torn
// down together on exit.
func StartServer() {
	router := gin.Default()

	fb, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	st := store.NewFirestoreStore(fb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := services.NewHub(st)
	hub.Start(ctx)
	defer hub.Stop()

	provider := services.NewAuthProvider(fb, services.NewRecaptchaVerifierFromEnv(), services.NewSMTPGatewayFromEnv())

	binder := services.NewSessionBinder(provider, st)
	defer binder.Close()

	gateway := services.NewWriteGateway(st, binder)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.SignInController(router, provider)
	auth.SignUpController(router, provider)
	auth.SignOutController(router, provider, binder)
	auth.PhoneController(router, provider)
	course.CourseController(router, hub, gateway)
	blog.BlogController(router, hub, gateway)
	contact.ContactController(router, hub, gateway, binder)
	admin.DashboardController(router, hub, binder)

	router.Run()
}
