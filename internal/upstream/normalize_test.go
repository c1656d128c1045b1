package upstream

import (
	"encoding/json"
	"testing"
)

func TestExtractCollection(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		aliases []string
		want    int
	}{
		{
			name:    "bare array",
			body:    `[{"id":"a"},{"id":"b"}]`,
			aliases: []string{"admins"},
			want:    2,
		},
		{
			name:    "named field",
			body:    `{"success":true,"admins":[{"id":"a"},{"id":"b"},{"id":"c"}]}`,
			aliases: []string{"admins"},
			want:    3,
		},
		{
			name:    "generic data field",
			body:    `{"success":true,"data":[{"id":"a"}]}`,
			aliases: []string{"users"},
			want:    1,
		},
		{
			name:    "generic items field",
			body:    `{"items":[{"id":"a"},{"id":"b"}]}`,
			aliases: []string{"payments"},
			want:    2,
		},
		{
			name:    "nested payload object",
			body:    `{"success":true,"data":{"payments":[{"id":"a"},{"id":"b"}]}}`,
			aliases: []string{"payments"},
			want:    2,
		},
		{
			name:    "nested generic field",
			body:    `{"payload":{"items":[{"id":"a"}]}}`,
			aliases: []string{"assistants"},
			want:    1,
		},
		{
			name:    "empty object",
			body:    `{}`,
			aliases: []string{"admins"},
			want:    0,
		},
		{
			name:    "object without array",
			body:    `{"success":true,"message":"ok"}`,
			aliases: []string{"admins"},
			want:    0,
		},
		{
			name:    "scalar response",
			body:    `"hello"`,
			aliases: []string{"admins"},
			want:    0,
		},
		{
			name:    "field is not an array",
			body:    `{"admins":{"id":"a"}}`,
			aliases: []string{"admins"},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCollection([]byte(tt.body), tt.aliases...)
			if got == nil {
				t.Fatal("ExtractCollection() 不应该返回 nil")
			}
			if len(got) != tt.want {
				t.Errorf("ExtractCollection() 返回 %d 条记录, 期望 %d 条", len(got), tt.want)
			}
		})
	}
}

func TestExtractCollectionKeepsOrder(t *testing.T) {
	body := `{"data":[{"id":"first"},{"id":"second"},{"id":"third"}]}`

	got := ExtractCollection([]byte(body))
	if len(got) != 3 {
		t.Fatalf("ExtractCollection() 返回 %d 条记录, 期望 3 条", len(got))
	}

	wantIDs := []string{"first", "second", "third"}
	for i, raw := range got {
		var record struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &record); err != nil {
			t.Fatalf("解析第 %d 条记录失败: %v", i, err)
		}
		if record.ID != wantIDs[i] {
			t.Errorf("第 %d 条记录 id = %q, 期望 %q", i, record.ID, wantIDs[i])
		}
	}
}

func TestDecodeCollectionSkipsBadRecords(t *testing.T) {
	type record struct {
		ID string `json:"id"`
	}

	body := `{"data":[{"id":"a"},"oops",{"id":"b"}]}`

	got := decodeCollection[record]([]byte(body))
	if len(got) != 2 {
		t.Fatalf("decodeCollection() 返回 %d 条记录, 期望 2 条", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("decodeCollection() = %v, 期望 [a b]", got)
	}
}

func TestReverseRecords(t *testing.T) {
	records := []int{1, 2, 3, 4}
	reverseRecords(records)

	want := []int{4, 3, 2, 1}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("reverseRecords() = %v, 期望 %v", records, want)
		}
	}
}
