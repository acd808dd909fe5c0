package location

import (
	"context"

	"quote-and-translate/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awslocation "github.com/aws/aws-sdk-go-v2/service/location"
	"github.com/aws/aws-sdk-go-v2/service/location/types"
)

// Client wraps the Amazon Location Service calls the quote module depends
// on. It carries no policy: a missing result is (nil, nil), and the caller
// decides what that means.
type Client struct {
	api *awslocation.Client
}

func NewClient(cfg aws.Config) *Client {
	return &Client{api: awslocation.NewFromConfig(cfg)}
}

// SearchPlace returns the top match for free-form place text, or nil when
// the index has no result.
func (c *Client) SearchPlace(ctx context.Context, indexName, text string) (*models.Coordinate, error) {
	out, err := c.api.SearchPlaceIndexForText(ctx, &awslocation.SearchPlaceIndexForTextInput{
		IndexName:  aws.String(indexName),
		Text:       aws.String(text),
		MaxResults: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Results) == 0 {
		return nil, nil
	}
	place := out.Results[0].Place
	if place == nil || place.Geometry == nil || len(place.Geometry.Point) < 2 {
		return nil, nil
	}
	// Points come back as [longitude, latitude].
	return &models.Coordinate{
		Longitude: place.Geometry.Point[0],
		Latitude:  place.Geometry.Point[1],
	}, nil
}

// CalculateRoute returns the driving distance in kilometers between two
// coordinates, or nil when the calculator produced no summary.
func (c *Client) CalculateRoute(ctx context.Context, calculatorName string, origin, dest models.Coordinate) (*float64, error) {
	out, err := c.api.CalculateRoute(ctx, &awslocation.CalculateRouteInput{
		CalculatorName:      aws.String(calculatorName),
		DeparturePosition:   []float64{origin.Longitude, origin.Latitude},
		DestinationPosition: []float64{dest.Longitude, dest.Latitude},
		TravelMode:          types.TravelMode("Car"),
	})
	if err != nil {
		return nil, err
	}
	if out.Summary == nil || out.Summary.Distance == nil {
		return nil, nil
	}
	return out.Summary.Distance, nil
}
