package seed

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joblink-dev/admin-console/backend/internal/config"
	"github.com/joblink-dev/admin-console/backend/internal/domain"
	"github.com/joblink-dev/admin-console/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ImportOperatorsFromCSV 从 CSV 文件导入操作员账号，
// 文件格式：username,fullName,email,role，第一行为表头。
// 已存在的用户名会被跳过，不会中断导入。
func ImportOperatorsFromCSV(cfg *config.Config, r *repository.Repository, path string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("打开文件失败", "path", path, "error", err)
		return
	}
	defer file.Close()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Operator.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("无法生成密码哈希", "error", err)
		return
	}

	reader := csv.NewReader(file)

	// 跳过表头
	if _, err := reader.Read(); err != nil {
		slog.Error("读取表头失败", "error", err)
		return
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			slog.Error("读取记录失败", "error", err)
			continue
		}

		if len(record) < 4 {
			slog.Error("记录字段数量不足", "record", record)
			continue
		}

		role := domain.OperatorRole(strings.TrimSpace(record[3]))
		if role != domain.RoleOperator && role != domain.RoleSuperAdmin {
			slog.Error("无法识别的角色", "role", record[3])
			continue
		}

		operator := &domain.Operator{
			Username:     strings.TrimSpace(record[0]),
			PasswordHash: string(passwordHash),
			FullName:     strings.TrimSpace(record[1]),
			Email:        strings.TrimSpace(record[2]),
			Role:         role,
		}

		if err := r.CreateOperator(operator); err != nil {
			var pgErr *pgconn.PgError
			switch {
			case errors.As(err, &pgErr) && pgErr.ConstraintName == "operators_username_key":
				slog.Info("操作员已存在，跳过", "username", operator.Username)
			default:
				slog.Error("无法创建操作员", "username", operator.Username, "error", err)
			}
			continue
		}

		imported++
	}

	slog.Info("导入完成", "imported", imported)
}
