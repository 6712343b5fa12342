package db

import (
	"os"
	"strconv"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "chordsheet-metadata"

// Enabled reports whether metadata lookups are configured at all.
func Enabled() bool {
	return os.Getenv("METADATA_ENDPOINT") != ""
}

// GetSongMetadatas fetches artist/release/year records for song titles.
// Titles with no record are simply absent from the result.
func GetSongMetadatas(titles []string) map[string]model.SongMetadata {
	if len(titles) > 10 {
		panic("Not supposed to pass in more than 10 titles!")
	}

	res := make(map[string]model.SongMetadata)

	if len(titles) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, title := range titles {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(title),
		}
		keys = append(keys, key)
	}

	endpoint := os.Getenv("METADATA_ENDPOINT")
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[tableName] {
		var s model.SongMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			s.Artist = *v["Artist"].S
		}
		if v["Release"] != nil && v["Release"].S != nil {
			s.Release = *v["Release"].S
		}
		if v["Title"] != nil && v["Title"].S != nil {
			s.Title = *v["Title"].S
		}
		res[*v["PK"].S] = s
	}

	return res
}
