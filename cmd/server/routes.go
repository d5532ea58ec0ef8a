package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"partner-portal.backend/internal/interfaces/http/handlers"
	"partner-portal.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	associateHandler *handlers.AssociateHandler
	referralHandler  *handlers.ReferralHandler
	payoutHandler    *handlers.PayoutHandler
	adminHandler     *handlers.AdminHandler
	authMiddleware   gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Service catalog (public)
		v1.GET("/services", d.associateHandler.Services)

		// Associate self-service routes (protected)
		associates := v1.Group("/associates")
		associates.Use(d.authMiddleware)
		{
			associates.GET("/me", d.associateHandler.GetMe)
			associates.PUT("/me/kyc", d.associateHandler.SubmitKYC)
			associates.GET("/me/welcome-tip", d.associateHandler.WelcomeTip)
		}

		// Referral routes (protected)
		referrals := v1.Group("/referrals")
		referrals.Use(d.authMiddleware)
		{
			referrals.POST("", middleware.IdempotencyMiddleware(), d.referralHandler.Submit)
			referrals.GET("", d.referralHandler.List)
		}

		// Payout routes (protected)
		payouts := v1.Group("/payouts")
		payouts.Use(d.authMiddleware)
		{
			payouts.POST("", d.payoutHandler.Request)
			payouts.GET("", d.payoutHandler.List)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/associates", d.adminHandler.ListAssociates)
			admin.POST("/associates", d.adminHandler.OnboardAssociate)
			admin.GET("/associates/:id/referrals", d.adminHandler.ListAssociateReferrals)
			admin.PUT("/associates/:id/kyc", d.adminHandler.ReviewKYC)

			admin.GET("/kyc/pending", d.adminHandler.ListPendingKYC)

			admin.PUT("/referrals/:id/complete", d.adminHandler.CompleteReferral)
			admin.PUT("/referrals/:id/reject", d.adminHandler.RejectReferral)

			admin.GET("/metrics", d.adminHandler.GetMetrics)
			admin.GET("/analysis", d.adminHandler.GetAnalysis)

			admin.GET("/payouts", d.adminHandler.ListPayouts)
			admin.PUT("/payouts/:id/status", d.adminHandler.UpdatePayoutStatus)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID, Idempotency-Key")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "partner-portal-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
