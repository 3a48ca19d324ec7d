// Package mcu exposes the system management controller: the real-time
// clock and the hardware model query. The MCU is reached over I2C on the
// real device, all values below mirror its register contents.
package mcu

import "time"

type SysModel uint8

const (
	Model3DS SysModel = iota
	Model3DSXL
	ModelN3DS
	Model2DS // single panel, no separate bottom backlight
	ModelN3DSXL
	ModelN2DSXL
)

// TimeDate is the RTC state. All fields are BCD encoded, exactly as read
// from the MCU registers. Year counts from 2000.
type TimeDate struct {
	Sec  uint8
	Min  uint8
	Hour uint8
	Day  uint8
	Mon  uint8
	Year uint8
}

type Device interface {
	RtcTimeDate() TimeDate
	SystemModel() SysModel
}

// Sim is a Device backed by the host clock.
type Sim struct {
	Model SysModel

	// Now overrides the clock source. Nil means time.Now.
	Now func() time.Time
}

func (s *Sim) RtcTimeDate() TimeDate {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now()
	return TimeDate{
		Sec:  bcd(t.Second()),
		Min:  bcd(t.Minute()),
		Hour: bcd(t.Hour()),
		Day:  bcd(t.Day()),
		Mon:  bcd(int(t.Month())),
		Year: bcd(t.Year() % 100),
	}
}

func (s *Sim) SystemModel() SysModel {
	return s.Model
}

func bcd(v int) uint8 {
	return uint8(v/10<<4 | v%10)
}
