package buybackclient

import "github.com/pkg/errors"

// ErrStale 请求返回时已经有更新的同key请求在途，结果应当丢弃
var ErrStale = errors.New("stale response: a newer request for the same key is in flight")
