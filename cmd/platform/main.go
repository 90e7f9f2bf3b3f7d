package main

import (
	"context"

	"gitee.com/flycash/survey-platform/cmd/platform/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

func main() {
	if err := ego.New().Invoker(func() error {
		app := ioc.InitApp()
		app.StartTasks(context.Background())
		return nil
	}).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
