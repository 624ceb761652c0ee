package middleware

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/labstack/echo/v4"

	"diskrelay/internal/domain"
	"diskrelay/internal/domain/dto"
	"diskrelay/internal/presentation"
	"diskrelay/pkg/logger"
)

// authToken is the payload a wallet signs with personal_sign. The signed
// message is the base64 text carried in the Authorization header.
type authToken struct {
	Action     string `json:"action"`
	Expiration int64  `json:"expiration"`
}

// WalletAuth admits a request only when it carries a fresh token for action
// signed by one of admins.
func WalletAuth(action string, admins []common.Address) echo.MiddlewareFunc {
	allowed := make(map[common.Address]struct{}, len(admins))
	for _, a := range admins {
		allowed[a] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)
			if err := validateAuthHeader(authHeader); err != nil {
				return unauthorized(ctx, err)
			}

			encoded := strings.TrimPrefix(authHeader, presentation.AuthScheme)
			token, err := decodeToken(encoded)
			if err != nil {
				return unauthorized(ctx, err)
			}

			if err := validateToken(token, action); err != nil {
				return unauthorized(ctx, err)
			}

			wallet, err := recoverSigner(encoded, ctx.Request().Header.Get(presentation.SignatureKey))
			if err != nil {
				return unauthorized(ctx, err)
			}

			if _, ok := allowed[wallet]; !ok {
				return unauthorized(ctx, fmt.Errorf("wallet %s is not an admin", wallet.Hex()))
			}

			logger.Info("admin request authorized", "wallet", wallet.Hex(), "action", token.Action,
				"expiration", token.Expiration)

			req := ctx.Request()
			ctx.SetRequest(req.WithContext(domain.WithActor(req.Context(), wallet.Hex())))

			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   string(domain.KindUnauthorized),
		Message: err.Error(),
	})
}

func validateAuthHeader(authHeader string) error {
	if authHeader == "" {
		return errors.New("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, presentation.AuthScheme) {
		return errors.New("missing Ethereum header prefix")
	}

	return nil
}

func decodeToken(encoded string) (*authToken, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64 token failed: %s", err.Error())
	}

	token := &authToken{}
	if err := json.Unmarshal(raw, token); err != nil {
		return nil, fmt.Errorf("json decode failed: %s", err.Error())
	}

	return token, nil
}

func validateToken(token *authToken, action string) error {
	if token.Action == "" {
		return errors.New("empty action")
	}
	if token.Action != action {
		return errors.New("invalid action")
	}
	if token.Expiration == 0 {
		return errors.New("empty expiration")
	}
	if token.Expiration < time.Now().Unix() {
		return errors.New("invalid expiration")
	}

	return nil
}

// recoverSigner returns the address that personal_signed message.
func recoverSigner(message, signature string) (common.Address, error) {
	if signature == "" {
		return common.Address{}, errors.New("missing X-Signature header")
	}

	sig, err := hexutil.Decode(strings.TrimSpace(signature))
	if err != nil || len(sig) != crypto.SignatureLength {
		return common.Address{}, errors.New("invalid signature format")
	}

	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	prefix := "\x19Ethereum Signed Message:\n" + strconv.Itoa(len(message))
	hash := crypto.Keccak256([]byte(prefix), []byte(message))

	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("signature recovery failed: %w", err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}
