package chain

import "time"

//Clock provides the timestamps of appended blocks. They are part of each
//block's hash, so tests provide a deterministic clock to get stable ids.
type Clock interface {
	ReadUs() (ts uint64)
}

//WallClock implements time keeping by looking at the local wallclock
type WallClock struct{}

//NewWallClock creates a clock
func NewWallClock() *WallClock {
	return &WallClock{}
}

//ReadUs reads the microseconds since the unix epoch
func (c *WallClock) ReadUs() uint64 {
	return uint64(time.Now().UnixNano() / int64(time.Microsecond))
}

//Time converts a microsecond timestamp back to a time in UTC
func Time(us uint64) time.Time {
	return time.Unix(0, int64(us)*int64(time.Microsecond)).UTC()
}
