// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anzhiyu-c/xiangce-app/ent/album"
	"github.com/anzhiyu-c/xiangce-app/ent/photo"
	"github.com/anzhiyu-c/xiangce-app/ent/schema"
	"github.com/anzhiyu-c/xiangce-app/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	albumFields := schema.Album{}.Fields()
	_ = albumFields
	// albumDescCreatedAt is the schema descriptor for created_at field.
	albumDescCreatedAt := albumFields[1].Descriptor()
	// album.DefaultCreatedAt holds the default value on creation for the created_at field.
	album.DefaultCreatedAt = albumDescCreatedAt.Default.(func() time.Time)
	// albumDescUpdatedAt is the schema descriptor for updated_at field.
	albumDescUpdatedAt := albumFields[2].Descriptor()
	// album.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	album.DefaultUpdatedAt = albumDescUpdatedAt.Default.(func() time.Time)
	// album.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	album.UpdateDefaultUpdatedAt = albumDescUpdatedAt.UpdateDefault.(func() time.Time)
	// albumDescName is the schema descriptor for name field.
	albumDescName := albumFields[3].Descriptor()
	// album.NameValidator is a validator for the "name" field. It is called by the builders before save.
	album.NameValidator = func() func(string) error {
		validators := albumDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// albumDescDescription is the schema descriptor for description field.
	albumDescDescription := albumFields[4].Descriptor()
	// album.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	album.DescriptionValidator = albumDescDescription.Validators[0].(func(string) error)
	photoFields := schema.Photo{}.Fields()
	_ = photoFields
	// photoDescCreatedAt is the schema descriptor for created_at field.
	photoDescCreatedAt := photoFields[1].Descriptor()
	// photo.DefaultCreatedAt holds the default value on creation for the created_at field.
	photo.DefaultCreatedAt = photoDescCreatedAt.Default.(func() time.Time)
	// photoDescUpdatedAt is the schema descriptor for updated_at field.
	photoDescUpdatedAt := photoFields[2].Descriptor()
	// photo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	photo.DefaultUpdatedAt = photoDescUpdatedAt.Default.(func() time.Time)
	// photo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	photo.UpdateDefaultUpdatedAt = photoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// photoDescImageURL is the schema descriptor for image_url field.
	photoDescImageURL := photoFields[3].Descriptor()
	// photo.ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	photo.ImageURLValidator = photoDescImageURL.Validators[0].(func(string) error)
	// photoDescCaption is the schema descriptor for caption field.
	photoDescCaption := photoFields[4].Descriptor()
	// photo.CaptionValidator is a validator for the "caption" field. It is called by the builders before save.
	photo.CaptionValidator = photoDescCaption.Validators[0].(func(string) error)
	// photoDescLocation is the schema descriptor for location field.
	photoDescLocation := photoFields[5].Descriptor()
	// photo.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	photo.LocationValidator = photoDescLocation.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[2].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescNickname is the schema descriptor for nickname field.
	userDescNickname := userFields[3].Descriptor()
	// user.NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	user.NicknameValidator = userDescNickname.Validators[0].(func(string) error)
}
