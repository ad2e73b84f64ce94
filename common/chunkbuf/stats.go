package chunkbuf

import "github.com/favbox/windbuf/common/json"

// Stats 是缓冲区内存占用的快照，便于诊断日志输出。
type Stats struct {
	Length    int `json:"length"`
	Capacity  int `json:"capacity"`
	Unused    int `json:"unused"`
	Segments  int `json:"segments"`
	OpenViews int `json:"open_views"`
}

// Stats 返回当前的内存占用快照。
func (s *Store[T]) Stats() Stats {
	return Stats{
		Length:    s.count,
		Capacity:  s.capacity,
		Unused:    s.Unused(),
		Segments:  len(s.segments),
		OpenViews: int(s.views.Load()),
	}
}

// String 返回快照的 JSON 表示。
func (st Stats) String() string {
	b, err := json.Marshal(st)
	if err != nil {
		return err.Error()
	}
	return string(b)
}
