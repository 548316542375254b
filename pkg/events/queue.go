// Package events 提供按 tick 划分的双缓冲事件队列
//
// 事件在本 tick 写入 current 缓冲区；调度器在 tick 结束时调用 Update，
// current 变为 previous，previous 被丢弃。因此一个事件对读取方可见的窗口是
// "写入所在 tick 的剩余部分 + 下一个 tick"，之后自动清除。
//
// 每个消费方持有自己的 Reader，Reader 记录已读位置，保证同一事件对同一读取方只出现一次。
// 读取方可以选择：
//   - Read: 全部未读事件
//   - Last: 仅最近一个事件（"most recent" 语义）
//   - Any:  是否存在未读事件（"has any" 语义）
package events

// Queue 单一事件类型的双缓冲队列
// 非并发安全：所有读写都发生在单线程的游戏循环中
type Queue[T any] struct {
	previous      []T
	current       []T
	previousStart uint64 // previous[0] 的全局序号
	currentStart  uint64 // current[0] 的全局序号
	count         uint64 // 已发送事件总数（下一个事件的序号）
}

// NewQueue 创建空队列
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send 写入一个事件到当前 tick 的缓冲区
func (q *Queue[T]) Send(event T) {
	q.current = append(q.current, event)
	q.count++
}

// Update 交换缓冲区（每个 tick 结束时调用一次）
// 上上个 tick 写入的事件在此被丢弃
func (q *Queue[T]) Update() {
	q.previous, q.current = q.current, q.previous[:0]
	q.previousStart = q.currentStart
	q.currentStart = q.count
}

// Clear 立即丢弃所有缓冲事件
func (q *Queue[T]) Clear() {
	q.previous = q.previous[:0]
	q.current = q.current[:0]
	q.previousStart = q.count
	q.currentStart = q.count
}

// Len 返回仍在缓冲区内的事件数量（两个缓冲区之和）
func (q *Queue[T]) Len() int {
	return len(q.previous) + len(q.current)
}

// Reader 返回一个从当前缓冲区开头读取的读取器
// 新读取器能看到仍在缓冲区内的事件
func (q *Queue[T]) Reader() *Reader[T] {
	return &Reader[T]{queue: q, next: q.previousStart}
}

// Reader 单个消费方的读取游标
type Reader[T any] struct {
	queue *Queue[T]
	next  uint64 // 下一个未读事件的全局序号
}

// Read 返回全部未读事件并推进游标
func (r *Reader[T]) Read() []T {
	q := r.queue
	if r.next < q.previousStart {
		// 读取方落后超过两个 tick，中间的事件已被丢弃
		r.next = q.previousStart
	}

	var result []T
	if r.next < q.currentStart {
		offset := r.next - q.previousStart
		if offset < uint64(len(q.previous)) {
			result = append(result, q.previous[offset:]...)
		}
		r.next = q.currentStart
	}
	offset := r.next - q.currentStart
	if offset < uint64(len(q.current)) {
		result = append(result, q.current[offset:]...)
	}
	r.next = q.count
	return result
}

// Last 返回最近一个未读事件（如果存在），并将所有未读事件标记为已读
func (r *Reader[T]) Last() (T, bool) {
	var zero T
	unread := r.Read()
	if len(unread) == 0 {
		return zero, false
	}
	return unread[len(unread)-1], true
}

// Any 报告是否存在未读事件，并将它们标记为已读
func (r *Reader[T]) Any() bool {
	return len(r.Read()) > 0
}

// Pending 返回未读事件数量（不推进游标）
func (r *Reader[T]) Pending() int {
	next := r.next
	if next < r.queue.previousStart {
		next = r.queue.previousStart
	}
	return int(r.queue.count - next)
}
