package memo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

const (
	ProfileDataVersion = 1

	OperationCreateProfile = "create_profile"
	OperationUpdateProfile = "update_profile"

	// OperationDeleteProfile closes the signer's record. Deletion carries no
	// memo and no burn, so the literal only names the emitted event.
	OperationDeleteProfile = "delete_profile"

	MaxUsernameLength     = 32
	MaxProfileImageLength = 256
	MaxAboutMeLength      = 128
)

// ProfileCreationData is the inner record for create_profile. The profile is
// scoped by the user pubkey alone, so no entity id travels in the payload.
type ProfileCreationData struct {
	Version   uint8
	Category  string
	Operation string
	User      string
	Username  string
	Image     *string
	AboutMe   *string
}

func DecodeProfileCreation(payload []byte) (*ProfileCreationData, error) {
	var d ProfileCreationData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidProfileDataFormat
	}
	return &d, nil
}

func (d *ProfileCreationData) Validate(user solana.PublicKey) error {
	if d.Version != ProfileDataVersion {
		return ErrUnsupportedProfileDataVersion
	}
	err := checkLiteral(d.Category, CategoryProfile, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationCreateProfile, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.User, user, ErrInvalidUserPubkeyFormat, ErrUserPubkeyMismatch)
	if err != nil {
		return err
	}
	if len(d.Username) == 0 || len(d.Username) > MaxUsernameLength {
		return ErrInvalidUsername
	}
	if d.Image != nil && len(*d.Image) > MaxProfileImageLength {
		return ErrInvalidProfileImage
	}
	if d.AboutMe != nil && len(*d.AboutMe) > MaxAboutMeLength {
		return ErrInvalidAboutMe
	}
	return nil
}

// ProfileUpdateData carries optional overrides for every mutable profile
// field; absent fields keep their stored values.
type ProfileUpdateData struct {
	Version   uint8
	Category  string
	Operation string
	User      string
	Username  *string
	Image     *string
	AboutMe   *string
}

func DecodeProfileUpdate(payload []byte) (*ProfileUpdateData, error) {
	var d ProfileUpdateData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidProfileDataFormat
	}
	return &d, nil
}

func (d *ProfileUpdateData) Validate(user solana.PublicKey) error {
	if d.Version != ProfileDataVersion {
		return ErrUnsupportedProfileDataVersion
	}
	err := checkLiteral(d.Category, CategoryProfile, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationUpdateProfile, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.User, user, ErrInvalidUserPubkeyFormat, ErrUserPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.Username != nil && (len(*d.Username) == 0 || len(*d.Username) > MaxUsernameLength) {
		return ErrInvalidUsername
	}
	if d.Image != nil && len(*d.Image) > MaxProfileImageLength {
		return ErrInvalidProfileImage
	}
	if d.AboutMe != nil && len(*d.AboutMe) > MaxAboutMeLength {
		return ErrInvalidAboutMe
	}
	return nil
}
