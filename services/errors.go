package services

import "errors"

// Shared errors used across services and the HTTP mapping layer.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed = errors.New("validation failed")
	ErrNameRequired = errors.New("name is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime = errors.New("time must be in HH:MM format")
	ErrInvalidYear = errors.New("year must be positive")
	ErrPlayerAlreadyInSquad = errors.New("player is already in the squad")
	ErrUnsupportedFileType = errors.New("unsupported file content type")

	// Conflicts
	ErrUserEmailConflict = errors.New("email address is already in use")
	ErrSportNameConflict = errors.New("sport name is already in use")
	ErrModalityNameConflict = errors.New("modality name is already in use")
	ErrTeamNameConflict = errors.New("team name is already in use")
	ErrChampionshipNameConflict = errors.New("championship name is already in use")
	ErrSponsorNameConflict = errors.New("sponsor name is already in use")

	// Authentication and authorization
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	// Entity-specific not-found errors (more context than the generic one)
	ErrUserNotFound = errors.New("user not found")
	ErrSportNotFound = errors.New("sport not found")
	ErrModalityNotFound = errors.New("modality not found")
	ErrTeamNotFound = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrChampionshipNotFound = errors.New("championship not found")
	ErrMatchNotFound = errors.New("match not found")
	ErrNewsNotFound = errors.New("news item not found")
	ErrSponsorNotFound = errors.New("sponsor not found")
	ErrHistoricRecordNotFound = errors.New("historic record not found")

	// In-use deletions
	ErrSportInUse = errors.New("sport is referenced by modalities and cannot be deleted")
	ErrModalityInUse = errors.New("modality is referenced by teams or championships and cannot be deleted")
)
