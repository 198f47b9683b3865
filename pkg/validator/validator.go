package validator

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
	zhtrans "github.com/go-playground/validator/v10/translations/zh"
)

// gin binding使用的validator翻译器，按配置语言懒加载

var (
	trans ut.Translator
	once  sync.Once
)

// LazyInitGinValidator 注册gin validator的错误翻译
func LazyInitGinValidator(language string) {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		enLoc := en.New()
		zhLoc := zh.New()
		uni := ut.New(enLoc, enLoc, zhLoc)

		switch language {
		case "zh", "zh-CN":
			trans, _ = uni.GetTranslator("zh")
			_ = zhtrans.RegisterDefaultTranslations(v, trans)
		default:
			trans, _ = uni.GetTranslator("en")
			_ = entrans.RegisterDefaultTranslations(v, trans)
		}
	})
}

// Translate 把校验错误翻译成可读文本
func Translate(err error) string {
	if err == nil {
		return ""
	}
	if trans == nil {
		return err.Error()
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	for _, e := range errs {
		return e.Translate(trans)
	}
	return err.Error()
}
