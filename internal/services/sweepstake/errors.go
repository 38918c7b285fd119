package sweepstake

// ServiceError is a custom error type for sweepstake service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ServiceError = "config cannot be nil"
	ErrNilStore         ServiceError = "store repository cannot be nil"
	ErrNilNotifier      ServiceError = "notifier cannot be nil"
	ErrNilClock         ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator ServiceError = "UUID generator cannot be nil"

	ErrInvalidTitle      ServiceError = "title cannot be empty"
	ErrInvalidEntryFee   ServiceError = "entry fee cannot be negative"
	ErrInvalidTimeWindow ServiceError = "end time must be after start time"
	ErrInvalidCapacity   ServiceError = "max participants cannot be negative"
	ErrInvalidUserName   ServiceError = "user name cannot be empty"
	ErrInvalidBalance    ServiceError = "opening balance cannot be negative"

	ErrNotFinished ServiceError = "sweepstake has not finished"
)
