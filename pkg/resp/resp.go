package resp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"message": msg})
}

// ServerError logs the real error and answers with a generic message;
// internals never reach the client.
func ServerError(c *gin.Context, err error) {
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}

// ValidationError renders a binding failure as a field-keyed error tree:
// {"message":"Validation Error","errors":{"price":["must be greater than 0"]}}
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation Error",
		"errors":  validationTree(err),
	})
}

func validationTree(err error) map[string][]string {
	tree := map[string][]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			tree[field] = append(tree[field], ruleMessage(fe))
		}
		return tree
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		tree[typeErr.Field] = []string{fmt.Sprintf("must be of type %s", typeErr.Type)}
		return tree
	}

	tree["body"] = []string{"invalid request body"}
	return tree
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s item(s)", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
