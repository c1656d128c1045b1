package console

import (
	"context"
	"errors"
	"testing"
)

type fakeRecord struct {
	ID string
}

func TestStoreLoadFetchesOnce(t *testing.T) {
	fetchCount := 0
	store := NewStore(func(ctx context.Context) ([]fakeRecord, error) {
		fetchCount++
		return []fakeRecord{{ID: "a"}, {ID: "b"}}, nil
	})

	first, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() 出错: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("Load() 返回 %d 条, 期望 2 条", len(first))
	}

	// 已加载后再次 Load 直接返回快照，不重复拉取
	second, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("二次 Load() 出错: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("二次 Load() 返回 %d 条, 期望 2 条", len(second))
	}
	if fetchCount != 1 {
		t.Errorf("拉取次数 = %d, 期望 1", fetchCount)
	}
}

func TestStoreRefreshAlwaysFetches(t *testing.T) {
	fetchCount := 0
	store := NewStore(func(ctx context.Context) ([]fakeRecord, error) {
		fetchCount++
		return []fakeRecord{{ID: "a"}}, nil
	})

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() 出错: %v", err)
	}
	if _, err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() 出错: %v", err)
	}

	if fetchCount != 2 {
		t.Errorf("拉取次数 = %d, 期望 2", fetchCount)
	}
}

func TestStoreFetchErrorClearsSnapshot(t *testing.T) {
	fetchErr := errors.New("平台认证失败")
	failing := false
	store := NewStore(func(ctx context.Context) ([]fakeRecord, error) {
		if failing {
			return nil, fetchErr
		}
		return []fakeRecord{{ID: "a"}}, nil
	})

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() 出错: %v", err)
	}

	failing = true
	if _, err := store.Refresh(context.Background()); !errors.Is(err, fetchErr) {
		t.Fatalf("Refresh() 错误 = %v, 期望 %v", err, fetchErr)
	}

	// 失败后不保留旧记录，下一次 Load 重新进入加载流程
	if got := store.Records(); len(got) != 0 {
		t.Errorf("失败后仍有 %d 条记录, 期望清空", len(got))
	}

	failing = false
	records, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("恢复后 Load() 出错: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("恢复后 Load() 返回 %d 条, 期望 1 条", len(records))
	}
}

func TestStoreRemoveFunc(t *testing.T) {
	fetchCount := 0
	store := NewStore(func(ctx context.Context) ([]fakeRecord, error) {
		fetchCount++
		return []fakeRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
	})

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() 出错: %v", err)
	}

	if !store.RemoveFunc(func(r fakeRecord) bool { return r.ID == "b" }) {
		t.Fatal("RemoveFunc() = false, 期望剔除成功")
	}

	// 删除只做本地剔除，不触发重新拉取
	records := store.Records()
	if len(records) != 2 {
		t.Fatalf("剔除后剩 %d 条, 期望 2 条", len(records))
	}
	if records[0].ID != "a" || records[1].ID != "c" {
		t.Errorf("剔除后记录 = %v, 期望 [a c]", records)
	}
	if fetchCount != 1 {
		t.Errorf("拉取次数 = %d, 期望 1", fetchCount)
	}

	if store.RemoveFunc(func(r fakeRecord) bool { return r.ID == "b" }) {
		t.Error("剔除不存在的记录应该返回 false")
	}
}

func TestStoreFind(t *testing.T) {
	store := NewStore(func(ctx context.Context) ([]fakeRecord, error) {
		return []fakeRecord{{ID: "a"}, {ID: "b"}}, nil
	})
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() 出错: %v", err)
	}

	if record, ok := store.Find(func(r fakeRecord) bool { return r.ID == "b" }); !ok || record.ID != "b" {
		t.Errorf("Find(b) = (%v, %v), 期望找到 b", record, ok)
	}
	if _, ok := store.Find(func(r fakeRecord) bool { return r.ID == "z" }); ok {
		t.Error("Find(z) 不应该找到记录")
	}
}

func TestStoreActionGuard(t *testing.T) {
	store := NewStore(func(ctx context.Context) ([]fakeRecord, error) {
		return nil, nil
	})

	if !store.BeginAction("p1") {
		t.Fatal("首次 BeginAction(p1) 应该成功")
	}
	// 同一条记录的操作未结束时禁止重复提交
	if store.BeginAction("p1") {
		t.Error("重复 BeginAction(p1) 应该被拦截")
	}
	// 不同记录的操作互不影响
	if !store.BeginAction("p2") {
		t.Error("BeginAction(p2) 不应该受 p1 影响")
	}

	store.EndAction("p1")
	if !store.BeginAction("p1") {
		t.Error("EndAction 之后应该允许再次操作")
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	store := NewStore(func(ctx context.Context) ([]fakeRecord, error) {
		return []fakeRecord{{ID: "a"}, {ID: "b"}}, nil
	})
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() 出错: %v", err)
	}

	snapshot := store.Records()
	snapshot[0].ID = "changed"

	if got := store.Records(); got[0].ID != "a" {
		t.Errorf("修改快照影响了内部记录: %q", got[0].ID)
	}
}
