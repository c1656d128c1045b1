package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/joblink-dev/admin-console/backend/internal/config"
	"github.com/joblink-dev/admin-console/backend/internal/domain"
)

var (
	ErrNoToken      = errors.New("未配置平台服务令牌")
	ErrUnauthorized = errors.New("平台认证失败")
	ErrForbidden    = errors.New("没有访问该资源的权限")
	ErrNotFound     = errors.New("请求的资源不存在")
	ErrUpstream     = errors.New("平台服务出错")
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		token:   cfg.Upstream.ServiceToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Upstream.RequestTimeout) * time.Second,
		},
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 500:
		return nil, ErrUpstream
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("平台接口返回异常状态码 %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	// 改变平台状态的请求必须携带服务令牌，没有令牌时直接在本地拦截
	if c.token == "" {
		return nil, ErrNoToken
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) FetchAdmins(ctx context.Context) ([]domain.AdminRecord, error) {
	body, err := c.get(ctx, "/api/admin/admins")
	if err != nil {
		return nil, err
	}

	records := decodeCollection[domain.AdminRecord](body, "admins")
	reverseRecords(records)
	return records, nil
}

func (c *Client) FetchUsers(ctx context.Context) ([]domain.UserRecord, error) {
	body, err := c.get(ctx, "/api/admin/users")
	if err != nil {
		return nil, err
	}

	records := decodeCollection[domain.UserRecord](body, "users")
	reverseRecords(records)
	return records, nil
}

func (c *Client) FetchAssistants(ctx context.Context) ([]domain.AssistantRecord, error) {
	body, err := c.get(ctx, "/api/admin/assistants")
	if err != nil {
		return nil, err
	}

	records := decodeCollection[domain.AssistantRecord](body, "assistants")
	reverseRecords(records)
	return records, nil
}

func (c *Client) FetchPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	body, err := c.get(ctx, "/api/admin/payments")
	if err != nil {
		return nil, err
	}

	records := decodeCollection[domain.PaymentRecord](body, "payments")
	reverseRecords(records)
	return records, nil
}

type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) checkAction(body []byte, fallback string) error {
	resp := actionResponse{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return errors.New(fallback)
	}
	if !resp.Success {
		// 优先透传平台返回的错误信息
		if resp.Message != "" {
			return errors.New(resp.Message)
		}
		return errors.New(fallback)
	}
	return nil
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	body, err := c.post(ctx, "/api/admin/delete-admin", map[string]string{"id": id})
	if err != nil {
		return err
	}
	return c.checkAction(body, "删除管理员失败")
}

// VerifyPayment 审核支付，approve 为 true 时标记为 completed，否则标记为 failed
func (c *Client) VerifyPayment(ctx context.Context, id string, approve bool, note string) error {
	status := string(domain.PaymentCompleted)
	if !approve {
		status = string(domain.PaymentFailed)
	}

	body, err := c.post(ctx, "/api/admin/verify-payment", map[string]string{
		"paymentId": id,
		"status":    status,
		"note":      note,
	})
	if err != nil {
		return err
	}
	return c.checkAction(body, "审核支付失败")
}
