package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joblink-dev/admin-console/backend/internal/config"
)

func newTestClient(baseURL, token string) *Client {
	cfg := &config.Config{}
	cfg.Upstream.BaseURL = baseURL
	cfg.Upstream.ServiceToken = token
	cfg.Upstream.RequestTimeout = 5
	return NewClient(cfg)
}

func TestFetchAdminsReversesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/admins" {
			t.Errorf("请求路径 = %q, 期望 /api/admin/admins", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"admins":[{"id":"old"},{"id":"new"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "token")

	records, err := client.FetchAdmins(context.Background())
	if err != nil {
		t.Fatalf("FetchAdmins() 出错: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("FetchAdmins() 返回 %d 条记录, 期望 2 条", len(records))
	}
	// 列表展示最新记录在前
	if records[0].ID != "new" || records[1].ID != "old" {
		t.Errorf("记录顺序 = [%s %s], 期望 [new old]", records[0].ID, records[1].ID)
	}
}

func TestClientStatusCodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"认证失败", http.StatusUnauthorized, ErrUnauthorized},
		{"权限不足", http.StatusForbidden, ErrForbidden},
		{"资源不存在", http.StatusNotFound, ErrNotFound},
		{"服务端错误", http.StatusInternalServerError, ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(server.URL, "token")

			_, err := client.FetchUsers(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FetchUsers() 错误 = %v, 期望 %v", err, tt.wantErr)
			}
		})
	}
}

func TestPostWithoutTokenBlockedLocally(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	err := client.DeleteAdmin(context.Background(), "a1")
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("DeleteAdmin() 错误 = %v, 期望 %v", err, ErrNoToken)
	}
	if requested {
		t.Error("没有令牌时不应该向平台发出请求")
	}
}

func TestVerifyPaymentRequest(t *testing.T) {
	tests := []struct {
		name       string
		approve    bool
		wantStatus string
	}{
		{"通过", true, "completed"},
		{"拒绝", false, "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/admin/verify-payment" {
					t.Errorf("请求路径 = %q, 期望 /api/admin/verify-payment", r.URL.Path)
				}
				if auth := r.Header.Get("Authorization"); auth != "Bearer token" {
					t.Errorf("Authorization = %q, 期望 Bearer token", auth)
				}
				if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
					t.Fatalf("解析请求体失败: %v", err)
				}
				w.Write([]byte(`{"success":true}`))
			}))
			defer server.Close()

			client := newTestClient(server.URL, "token")

			if err := client.VerifyPayment(context.Background(), "p1", tt.approve, "备注"); err != nil {
				t.Fatalf("VerifyPayment() 出错: %v", err)
			}
			if got["paymentId"] != "p1" {
				t.Errorf("paymentId = %q, 期望 p1", got["paymentId"])
			}
			if got["status"] != tt.wantStatus {
				t.Errorf("status = %q, 期望 %q", got["status"], tt.wantStatus)
			}
			if got["note"] != "备注" {
				t.Errorf("note = %q, 期望 备注", got["note"])
			}
		})
	}
}

func TestVerifyPaymentPassesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"支付记录已被处理"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "token")

	err := client.VerifyPayment(context.Background(), "p1", true, "")
	if err == nil || err.Error() != "支付记录已被处理" {
		t.Errorf("VerifyPayment() 错误 = %v, 期望透传平台消息", err)
	}
}
