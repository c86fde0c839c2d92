package jwt

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	userredis "ClipFlow.com/cmd/user/infras/redis"
	usersvc "ClipFlow.com/cmd/user/service"
	"ClipFlow.com/config"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
	"github.com/pkg/errors"
)

const IdentityKey = "user_id"

// loginUserKey stashes the authenticated user between Authenticator and
// LoginResponse.
const loginUserKey = "login_user"

var AuthMiddleware *jwt.HertzJWTMiddleware

func Init() error {
	timeout := time.Duration(config.ConfigInfo.Jwt.ExpireHours) * time.Hour

	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "clipflow",
		Key:           []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:       timeout,
		MaxRefresh:    timeout,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{IdentityKey: user.UserId}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			id, ok := claims[IdentityKey].(float64)
			if !ok {
				return int64(0)
			}
			return int64(id)
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var login struct {
				UserName string `form:"username" json:"username"`
				Password string `form:"password" json:"password"`
			}
			if err := c.BindAndValidate(&login); err != nil {
				return nil, jwt.ErrMissingLoginValues
			}
			user, err := usersvc.NewLoginUserService(ctx).LoginUser(login.UserName, login.Password)
			if err != nil {
				return nil, err
			}
			c.Set(loginUserKey, user)
			return user, nil
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			id, ok := data.(int64)
			if !ok || id <= 0 {
				return false
			}
			revoked, err := userredis.IsTokenRevoked(ctx, jwt.GetToken(ctx, c))
			if err != nil {
				// revocation is best effort; a redis outage must not
				// lock every authenticated route
				hlog.Warnf("token revocation check failed: %v", err)
				return true
			}
			return !revoked
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			data := map[string]interface{}{
				"token":      token,
				"expires_at": expire,
			}
			if v, ok := c.Get(loginUserKey); ok {
				data["user"] = v
			}
			c.JSON(code, map[string]interface{}{
				"code":    errno.SuccessCode,
				"message": "success",
				"data":    data,
			})
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.AuthCode,
				"message": message,
			})
		},
	})
	if err != nil {
		return errors.WithMessage(err, "failed to build jwt middleware")
	}
	AuthMiddleware = mw
	return nil
}

// CurrentUserId returns the authenticated user's id, 0 when absent.
func CurrentUserId(c *app.RequestContext) int64 {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// RevokeCurrent blacklists the request's own token for the remainder of
// its lifetime.
func RevokeCurrent(ctx context.Context, c *app.RequestContext) error {
	claims := jwt.ExtractClaims(ctx, c)
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errno.AuthErr.WithMessage("invalid token")
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	return userredis.RevokeToken(ctx, jwt.GetToken(ctx, c), ttl)
}
