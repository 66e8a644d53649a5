package api

import (
	"alphadesk/internal/repository"
	"alphadesk/internal/service"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	RebalanceService   service.RebalanceService
	StressTestService  service.StressTestService
	HoldingsRepository repository.HoldingsRepository
	Logger             *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to alphadesk"})
	})
	router.GET("/holdings", m.holdings)
	router.POST("/rebalance", m.rebalance)
	router.GET("/scenarios", m.listScenarios)
	router.POST("/scenarios", m.createScenario)
	router.POST("/stressTest", m.stressTest)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware emits one structured line per request. This
// service keeps no request log table - the zap line is the whole
// audit trail.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()

	ctx.Next()

	m.Logger.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"clientIp", ctx.ClientIP(),
	)
}
