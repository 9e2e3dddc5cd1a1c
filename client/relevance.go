package client

import "sync/atomic"

// Ticket 某一次请求发出时的代数
type Ticket uint64

// Relevance 每次发起新请求代数加一，响应回来时代数变了说明结果已经过期
type Relevance struct {
	gen atomic.Uint64
}

func (r *Relevance) Begin() Ticket {
	return Ticket(r.gen.Add(1))
}

// Current 判断 t 是不是最新的一次请求
func (r *Relevance) Current(t Ticket) bool {
	return uint64(t) == r.gen.Load()
}

// Invalidate 让所有在途的请求都失效，比如界面已经关闭
func (r *Relevance) Invalidate() {
	r.gen.Add(1)
}
