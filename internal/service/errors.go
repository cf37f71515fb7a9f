package service

import "fmt"

// InputError 表示请求缺少或带有非法输入，此时不会调用模型后端。
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ServiceError 表示模型后端调用失败（连接失败、模型不存在、超时、响应格式错误等）。
type ServiceError struct {
	Model string
	Err   error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("chat service failed for model %s: %v", e.Model, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
