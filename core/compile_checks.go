package core

import glog "github.com/goliatone/go-logger/glog"

var (
	_ APIRootResolver = APIRootFunc(nil)
	_ APIRootResolver = StaticAPIRoot("")
	_ MetricsRecorder = NopMetricsRecorder{}
	_ RawConfigLoader = EnvConfigLoader{}
	_ ConfigProvider  = (*CfgxConfigProvider)(nil)
	_ OptionsResolver = GoOptionsResolver{}

	_ Logger         = glog.Nop()
	_ LoggerProvider = glog.ProviderFromLogger(glog.Nop())
)
