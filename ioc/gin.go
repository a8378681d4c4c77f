package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/assessment"
	"github.com/ecodeclub/hirebook/internal/cv"
	"github.com/ecodeclub/hirebook/internal/dashboard"
	"github.com/ecodeclub/hirebook/internal/job"
	"github.com/ecodeclub/hirebook/internal/media"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/ecodeclub/hirebook/internal/submission"
	"github.com/ecodeclub/hirebook/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	jobHdl *job.Handler,
	assessmentHdl *assessment.Handler,
	submissionHdl *submission.Handler,
	cvHdl *cv.Handler,
	mediaHdl *media.Handler,
	dashboardHdl *dashboard.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin(econf.GetStringSlice("server.allowOrigins")),
	}))
	res.Use(middleware.NewMetricsBuilder("hirebook").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	jobHdl.PublicRoutes(res.Engine)
	assessmentHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 角色校验，管理员可以访问公司的接口
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(sp).
		Prefix("/company", user.RoleCompany.String(), user.RoleAdmin.String()).
		Prefix("/candidate", user.RoleCandidate.String()).
		Build())
	userHdl.PrivateRoutes(res.Engine)
	jobHdl.PrivateRoutes(res.Engine)
	assessmentHdl.PrivateRoutes(res.Engine)
	submissionHdl.PrivateRoutes(res.Engine)
	cvHdl.PrivateRoutes(res.Engine)
	mediaHdl.PrivateRoutes(res.Engine)
	dashboardHdl.PrivateRoutes(res.Engine)
	return res
}

// allowOrigin 本地开发的时候总是放行
func allowOrigin(domains []string) func(origin string) bool {
	return func(origin string) bool {
		if strings.HasPrefix(origin, "http://localhost") {
			return true
		}
		for _, d := range domains {
			if strings.Contains(origin, d) {
				return true
			}
		}
		return false
	}
}
