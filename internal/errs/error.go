package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter  = errors.New("参数错误")
	ErrInvalidTransition = errors.New("非法的状态流转")

	ErrDistributionNotFound         = errors.New("投放记录不存在")
	ErrRespondentNotFound           = errors.New("受访者记录不存在")
	ErrDistributionDuplicate        = errors.New("投放记录主键冲突")
	ErrDistributionVersionMismatch  = errors.New("投放记录版本不匹配")
	ErrCreateDistributionFailed     = errors.New("创建投放失败")
	ErrDistributionIDGenerateFailed = errors.New("投放ID生成失败")

	ErrSendInvitationFailed = errors.New("发送邀请失败")
	ErrSendReminderFailed   = errors.New("发送提醒失败")

	ErrJobNotFound           = errors.New("定时任务不存在")
	ErrSchedulerCancellation = errors.New("取消定时任务失败")
	ErrTransactionFailure    = errors.New("级联删除事务失败")
)
