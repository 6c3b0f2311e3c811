package domain

//go:generate go run github.com/dmarkham/enumer -type=Op -trimprefix=Op -transform=snake -json -text

const (
	OpUnknown Op = iota
	OpDeposit
	OpWithdraw
	OpBalance
)

type Op int
