package memo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

const (
	ProjectDataVersion = 1

	OperationCreateProject  = "create_project"
	OperationUpdateProject  = "update_project"
	OperationBurnForProject = "burn_for_project"

	MaxProjectNameLength        = 64
	MaxProjectDescriptionLength = 256
	MaxProjectImageLength       = 256
	MaxProjectWebsiteLength     = 128
	MaxBurnMessageLength        = 696

	MaxTagsCount = 4
	MaxTagLength = 32
)

// ProjectCreationData is the inner record for create_project.
type ProjectCreationData struct {
	Version     uint8
	Category    string
	Operation   string
	Creator     string
	ProjectID   uint64
	Name        string
	Description string
	Image       string
	Website     string
	Tags        []string
}

func DecodeProjectCreation(payload []byte) (*ProjectCreationData, error) {
	var d ProjectCreationData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidProjectDataFormat
	}
	return &d, nil
}

func (d *ProjectCreationData) Validate(creator solana.PublicKey, expectedProjectID uint64) error {
	if d.Version != ProjectDataVersion {
		return ErrUnsupportedProjectDataVersion
	}
	err := checkLiteral(d.Category, CategoryProject, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationCreateProject, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Creator, creator, ErrInvalidCreatorPubkeyFormat, ErrCreatorPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.ProjectID != expectedProjectID {
		return ErrProjectIdMismatch
	}
	if len(d.Name) == 0 || len(d.Name) > MaxProjectNameLength {
		return ErrInvalidProjectName
	}
	if len(d.Description) > MaxProjectDescriptionLength {
		return ErrInvalidProjectDescription
	}
	if len(d.Image) > MaxProjectImageLength {
		return ErrInvalidProjectImage
	}
	if len(d.Website) > MaxProjectWebsiteLength {
		return ErrInvalidProjectWebsite
	}
	return validateTags(d.Tags)
}

// ProjectUpdateData carries optional overrides for the mutable project
// fields.
type ProjectUpdateData struct {
	Version     uint8
	Category    string
	Operation   string
	Updater     string
	ProjectID   uint64
	Name        *string
	Description *string
	Image       *string
	Website     *string
	Tags        *[]string
}

func DecodeProjectUpdate(payload []byte) (*ProjectUpdateData, error) {
	var d ProjectUpdateData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidProjectDataFormat
	}
	return &d, nil
}

func (d *ProjectUpdateData) Validate(updater solana.PublicKey, expectedProjectID uint64) error {
	if d.Version != ProjectDataVersion {
		return ErrUnsupportedProjectDataVersion
	}
	err := checkLiteral(d.Category, CategoryProject, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationUpdateProject, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Updater, updater, ErrInvalidUserPubkeyFormat, ErrUserPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.ProjectID != expectedProjectID {
		return ErrProjectIdMismatch
	}
	if d.Name != nil && (len(*d.Name) == 0 || len(*d.Name) > MaxProjectNameLength) {
		return ErrInvalidProjectName
	}
	if d.Description != nil && len(*d.Description) > MaxProjectDescriptionLength {
		return ErrInvalidProjectDescription
	}
	if d.Image != nil && len(*d.Image) > MaxProjectImageLength {
		return ErrInvalidProjectImage
	}
	if d.Website != nil && len(*d.Website) > MaxProjectWebsiteLength {
		return ErrInvalidProjectWebsite
	}
	if d.Tags != nil {
		return validateTags(*d.Tags)
	}
	return nil
}

// ProjectBurnData is the inner record for burn_for_project.
type ProjectBurnData struct {
	Version   uint8
	Category  string
	Operation string
	Burner    string
	ProjectID uint64
	Message   string
}

func DecodeProjectBurn(payload []byte) (*ProjectBurnData, error) {
	var d ProjectBurnData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidProjectDataFormat
	}
	return &d, nil
}

func (d *ProjectBurnData) Validate(burner solana.PublicKey, expectedProjectID uint64) error {
	if d.Version != ProjectDataVersion {
		return ErrUnsupportedProjectDataVersion
	}
	err := checkLiteral(d.Category, CategoryProject, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationBurnForProject, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Burner, burner, ErrInvalidBurnerPubkeyFormat, ErrBurnerPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.ProjectID != expectedProjectID {
		return ErrProjectIdMismatch
	}
	if len(d.Message) > MaxBurnMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
