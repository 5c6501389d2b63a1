package service

import "time"

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) SetCodeSource(next func() string) {
	s.newCode = next
}

var RandomCode = randomCode
