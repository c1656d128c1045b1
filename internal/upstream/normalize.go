package upstream

import (
	"encoding/json"
	"log/slog"
)

// 平台各接口返回的响应外层结构并不统一：有的直接返回数组，有的包在
// {success, data} 里，有的用记录名做字段名，还有的在 data 里再嵌套一层。
// 这里按固定顺序尝试这几种形状，全部不匹配时返回空集合，绝不报错。

var genericAliases = []string{"items", "data", "payload", "result"}

func ExtractCollection(body []byte, aliases ...string) []json.RawMessage {
	// 1. 整个响应本身就是数组
	var direct []json.RawMessage
	if err := json.Unmarshal(body, &direct); err == nil {
		if direct == nil {
			direct = []json.RawMessage{}
		}
		return direct
	}

	envelope := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		slog.Warn("无法识别的响应结构", "aliases", aliases, "error", err)
		return []json.RawMessage{}
	}

	keys := make([]string, 0, len(aliases)+len(genericAliases))
	keys = append(keys, aliases...)
	keys = append(keys, genericAliases...)

	// 2. 在外层对象中按别名顺序查找数组字段
	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
	}

	// 3. data/payload 本身是对象时，在其内部再找一层
	for _, outer := range []string{"data", "payload"} {
		raw, ok := envelope[outer]
		if !ok {
			continue
		}
		inner := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &inner); err != nil {
			continue
		}
		for _, key := range keys {
			innerRaw, ok := inner[key]
			if !ok {
				continue
			}
			var list []json.RawMessage
			if err := json.Unmarshal(innerRaw, &list); err == nil {
				return list
			}
		}
	}

	// 4. 兜底：返回空集合，由调用方决定空结果是否算错误
	slog.Warn("响应中没有找到记录数组", "aliases", aliases)
	return []json.RawMessage{}
}

func decodeCollection[T any](body []byte, aliases ...string) []T {
	items := ExtractCollection(body, aliases...)

	records := make([]T, 0, len(items))
	for _, item := range items {
		var record T
		if err := json.Unmarshal(item, &record); err != nil {
			slog.Warn("跳过无法解析的记录", "aliases", aliases, "error", err)
			continue
		}
		records = append(records, record)
	}

	return records
}

// 列表默认按最新创建的记录在前展示，拉取时反转一次即可
func reverseRecords[T any](records []T) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
