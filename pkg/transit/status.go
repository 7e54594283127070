package transit

// Status 路线数据的显示状态
// 与消息中的负数路线数量一一对应，OK 表示有可显示的路线记录
type Status int

const (
	StatusOK                   Status = 1
	StatusLoading              Status = -1
	StatusNoConnection         Status = -2
	StatusInvalidAPIKey        Status = -3
	StatusNoResults            Status = -4
	StatusUnknownAPIError      Status = -5
	StatusLocationDenied       Status = -6
	StatusUnknownLocationError Status = -7
	StatusMessageSendFailure   Status = -8
	StatusMessageDecodeFailure Status = -9
)

var statusTexts = map[Status]string{
	StatusOK:                   "",
	StatusLoading:              "Loading...",
	StatusNoConnection:         "No connection",
	StatusInvalidAPIKey:        "Invalid API key",
	StatusNoResults:            "No results",
	StatusUnknownAPIError:      "Unknown API error",
	StatusLocationDenied:       "Location access denied",
	StatusUnknownLocationError: "Unknown location error",
	StatusMessageSendFailure:   "Could not send message",
	StatusMessageDecodeFailure: "Could not decode message",
}

// Text 返回状态对应的固定提示文字，OK 状态返回空字符串
func (s Status) Text() string {
	if text, ok := statusTexts[s]; ok {
		return text
	}
	return statusTexts[StatusUnknownAPIError]
}

// Code 返回状态在消息中的编码（负数），OK 返回 0
func (s Status) Code() int {
	if s == StatusOK {
		return 0
	}
	return int(s)
}

// StatusFromCount 将消息中的路线数量解释为显示状态
//
// 规则：
//   - n > 0: StatusOK
//   - n == 0: StatusNoResults
//   - 已知负数编码：对应状态
//   - 其他负数：StatusUnknownAPIError
func StatusFromCount(n int) Status {
	switch {
	case n > 0:
		return StatusOK
	case n == 0:
		return StatusNoResults
	}
	s := Status(n)
	if _, ok := statusTexts[s]; ok {
		return s
	}
	return StatusUnknownAPIError
}
