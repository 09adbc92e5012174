package api

import (
	"net/http" // HTTP status codes

	"earnplay/internal/app"        // Session lifecycle
	"earnplay/internal/middleware" // Session middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

// Register mounts every route on r
func Register(r *gin.Engine, a *app.App) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Session routes
	r.GET("/view", ScreenHandler(a))     // Screen to render
	r.POST("/session", LoginHandler(a))  // Sign in
	r.GET("/session", RestoreHandler(a)) // Active session

	// Shell routes (protected by the session token)
	shell := r.Group("")
	shell.Use(middleware.SessionAuthMiddleware(a))
	shell.DELETE("/session", LogoutHandler(a))                        // Sign out
	shell.POST("/view", NavigateHandler(a))                           // Navigate
	shell.GET("/wallet", WalletHandler())                             // Balance
	shell.GET("/activities", ActivitiesHandler())                     // Activity catalog
	shell.GET("/activities/weekly", WeeklyActivityHandler())          // Weekly chart data
	shell.POST("/activities/:id/complete", CompleteActivityHandler()) // Earn
	shell.GET("/payment-methods", PaymentMethodsHandler())            // Payment catalog
	shell.POST("/withdrawals", WithdrawHandler())                     // Withdraw
	shell.POST("/withdrawals/:id/settle", SettleHandler())            // Settle a pending withdrawal
	shell.GET("/transactions", TransactionHistoryHandler())           // History
}
