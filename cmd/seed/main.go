package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joblink-dev/admin-console/backend/internal/config"
	"github.com/joblink-dev/admin-console/backend/internal/repository"
	"github.com/joblink-dev/admin-console/backend/internal/seed"
	"github.com/joblink-dev/admin-console/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var csvPath string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机操作员, 2: 从 CSV 导入操作员)")
	flag.IntVar(&n, "n", 5, "要插入的操作员数量")
	flag.StringVar(&csvPath, "csv", "./internal/seed/data/operators.csv", "操作员 CSV 文件路径")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的操作员数量")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			operator, err := utils.GenerateRandomOperator(cfg.Seed.Operator.Password, cfg.Email.OperatorDomain)
			if err != nil {
				slog.Error("无法生成随机操作员", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateOperator(operator); err != nil {
				slog.Error("无法创建操作员", slog.String("username", operator.Username), slog.String("error", err.Error()))
				cnt--
				continue
			}
		}
		slog.Info("插入随机操作员完成", "inserted", cnt)
	case 2:
		seed.ImportOperatorsFromCSV(cfg, repo, csvPath)
	default:
		slog.Error("无法识别的操作", "op", op)
	}
}
