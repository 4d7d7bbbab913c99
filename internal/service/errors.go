package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

// ErrNotFound covers lookups of nonexistent or soft-deleted records.
// Reads treat it as "no data"; writes that require the record reject
// the request.
var ErrNotFound = errors.New("record not found")

// ErrInvalidInput is the base of all validation failures. Requests are
// rejected before any write reaches the datastore.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrSelfTransfer         = fmt.Errorf("%w: transfer source and destination must differ", ErrInvalidInput)
	ErrAmountNotPositive    = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	ErrNegativeAdjustment   = fmt.Errorf("%w: adjustment must not be negative", ErrInvalidInput)
	ErrRateNotPositive      = fmt.Errorf("%w: exchange rate must be positive", ErrInvalidInput)
	ErrNameRequired         = fmt.Errorf("%w: name is required", ErrInvalidInput)
	ErrTitleRequired        = fmt.Errorf("%w: title is required", ErrInvalidInput)
	ErrInvalidType          = fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	ErrInvalidDate          = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	ErrInvalidID            = fmt.Errorf("%w: malformed id", ErrInvalidInput)
	ErrReplacementSameAsOld = fmt.Errorf("%w: replacement category must differ from the deleted one", ErrInvalidInput)
)

// ErrReferenced is the base of referential blocks: deleting a record
// that live records still point at is refused, not retried.
var ErrReferenced = errors.New("record is still referenced")

var (
	ErrCurrencyInUse      = fmt.Errorf("%w: currency is assigned to an asset", ErrReferenced)
	ErrAssetCategoryInUse = fmt.Errorf("%w: asset category still contains assets", ErrReferenced)
)
