package component

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/errorhandler"
	"github.com/temirov/ghzero/internal/result"
)

const (
	// TokenMissingMessage is reported when a component runs without a GitHub token.
	TokenMissingMessage = "No GitHub token found. Set GITHUB_TOKEN environment variable."

	invalidParametersMessageConstant        = "Invalid parameters provided to component"
	invalidParametersDetailTemplateConstant = "%s: %s"
	decodeParametersTemplateConstant        = "unable to decode parameters: %w"
	missingOperationMessageConstant         = "component operation is not configured"
	executionStartedMessageConstant         = "component execution started"
	validationRejectedMessageConstant       = "component parameters rejected"
	tokenMissingLogMessageConstant          = "component refused to run without token"
	executionFailedMessageConstant          = "component execution failed"
	executionSucceededMessageConstant       = "component execution succeeded"
	componentNameFieldConstant              = "component"
	parameterNamesFieldConstant             = "parameters"
	reasonFieldConstant                     = "reason"
	dataFormatJSONConstant                  = "json"
	dataFormatArrayConstant                 = "array"
)

// Operation performs a component's work against validated parameters.
type Operation[T any] func(executionContext context.Context, parameters Parameters) (T, error)

// Definition declares the static description and behavior of a component.
type Definition[T any] struct {
	Metadata         result.Metadata
	Schema           Schema
	SupportedFormats []string
	Operation        Operation[T]
}

// Component validates inputs, enforces the token requirement, and wraps operation output in a result envelope.
type Component[T any] struct {
	definition Definition[T]
	token      string
	logger     *zap.Logger
}

// New constructs a Component. The token is injected once and never read from the environment.
func New[T any](definition Definition[T], token string, logger *zap.Logger) *Component[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Component[T]{definition: definition, token: strings.TrimSpace(token), logger: logger}
}

// Execute validates the parameters, runs the operation, and returns the classified outcome.
func (component *Component[T]) Execute(executionContext context.Context, parameters Parameters) result.Result[T] {
	componentName := component.definition.Metadata.Name
	component.logger.Debug(executionStartedMessageConstant,
		zap.String(componentNameFieldConstant, componentName),
		zap.Strings(parameterNamesFieldConstant, parameterNames(parameters)),
	)

	if validationError := component.definition.Schema.Check(parameters); validationError != nil {
		component.logger.Debug(validationRejectedMessageConstant,
			zap.String(componentNameFieldConstant, componentName),
			zap.String(reasonFieldConstant, validationError.Error()),
		)
		return errorhandler.CreateErrorResult[T](errorhandler.ValidationError{
			Message: fmt.Sprintf(invalidParametersDetailTemplateConstant, invalidParametersMessageConstant, validationError.Error()),
		})
	}

	if len(component.token) == 0 {
		component.logger.Debug(tokenMissingLogMessageConstant, zap.String(componentNameFieldConstant, componentName))
		return result.Failure[T](TokenMissingMessage, result.ErrorCodeTokenMissing)
	}

	if component.definition.Operation == nil {
		return errorhandler.CreateErrorResult[T](fmt.Errorf("%s: %s", componentName, missingOperationMessageConstant))
	}

	output, operationError := component.definition.Operation(executionContext, parameters)
	if operationError != nil {
		component.logger.Debug(executionFailedMessageConstant,
			zap.String(componentNameFieldConstant, componentName),
			zap.Error(operationError),
		)
		return errorhandler.CreateErrorResult[T](operationError)
	}

	component.logger.Debug(executionSucceededMessageConstant, zap.String(componentNameFieldConstant, componentName))
	return result.Success(output, component.definition.Metadata)
}

// Validate reports whether the parameters satisfy the component schema.
func (component *Component[T]) Validate(parameters Parameters) bool {
	return component.definition.Schema.Validate(parameters)
}

// Schema exposes the declared parameter schema.
func (component *Component[T]) Schema() Schema {
	return component.definition.Schema
}

// Metadata exposes the component metadata attached to successful results.
func (component *Component[T]) Metadata() result.Metadata {
	return component.definition.Metadata
}

// SupportedFormats lists the output formats the component can render.
func (component *Component[T]) SupportedFormats() []string {
	if len(component.definition.SupportedFormats) == 0 {
		return []string{dataFormatJSONConstant, dataFormatArrayConstant}
	}
	return append([]string(nil), component.definition.SupportedFormats...)
}

// DecodeParameters copies validated parameters into a typed options struct using mapstructure tags.
// Fields absent from parameters keep the values already present in target.
func DecodeParameters(parameters Parameters, target any) error {
	presentParameters := make(map[string]any, len(parameters))
	for fieldName, value := range parameters {
		if value != nil {
			presentParameters[fieldName] = value
		}
	}

	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "mapstructure",
	})
	if decoderError != nil {
		return fmt.Errorf(decodeParametersTemplateConstant, decoderError)
	}
	if decodeError := decoder.Decode(presentParameters); decodeError != nil {
		return fmt.Errorf(decodeParametersTemplateConstant, decodeError)
	}
	return nil
}

func parameterNames(parameters Parameters) []string {
	names := make([]string, 0, len(parameters))
	for name, value := range parameters {
		if value != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
