package models

import "errors"

// ErrIndexOutOfRange 删除时给出的记录索引不存在
var ErrIndexOutOfRange = errors.New("记录索引超出范围")

// ValidationError 输入校验失败，不写入任何记录
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DataIntegrityError 已持久化的数据不符合预期格式，
// 只影响依赖该数据的报表，不应使整个看板不可用
type DataIntegrityError struct {
	Message string
}

func (e *DataIntegrityError) Error() string {
	return e.Message
}
