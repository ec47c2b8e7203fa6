package main

import (
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/joho/godotenv"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/conf"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/pkg/logger"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name string = "quadrant"
	// Version 是服务的版本号
	Version string
	// flagconf 是配置文件的路径命令行参数
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "app/quadrant/configs/config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()

	// 存在 .env 时加载，供配置文件中的 ${ENV} 引用
	_ = godotenv.Load()

	bc, closeConf, err := conf.Load(flagconf)
	if err != nil {
		panic(err)
	}
	defer closeConf()

	if err := logger.InitLogger(bc.Log.Level, bc.Log.File); err != nil {
		panic(err)
	}

	// 初始化日志记录器，包含时间戳、调用者信息、服务ID等上下文
	kl := log.With(logger.NewKratosLogger(logger.Log),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	app, cleanup, err := initApp(bc.Server, bc.Data, bc.Dashboard, bc.Render, bc.Insight, kl)
	if err != nil {
		// 数据文件缺失或格式错误时直接退出，错误信息中包含尝试过的路径
		logger.Log.Fatalf("启动失败: %v", err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
