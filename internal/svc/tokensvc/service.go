package tokensvc

import (
	"context"

	"github.com/festibalparty/festibal-push-backend/storage/tokenrepo"
)

type Service interface {
	// Register upserts one push token. When no token store is configured the
	// call still succeeds but OutRegister.Warning is set instead of persisting.
	Register(ctx context.Context, input InputRegister) (out OutRegister, err error)
}

type InputRegister struct {
	Token    string `validate:"required"`
	Platform string
}

type OutRegister struct {
	Token   *tokenrepo.PushToken
	Warning string
}
