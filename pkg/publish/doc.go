// Package publish uploads rendered slider snapshots to S3.
//
// A Publisher writes HTML documents to a bucket through any ObjectPutter,
// usually an *s3.Client from NewClient:
//
//	client := publish.NewClient(publish.ClientOptions{Region: "us-east-1"})
//	p := publish.NewPublisher(client, "widgets", publish.WithPrefix("demo/"))
//	res, err := p.Publish(ctx, "slider.html", html)
//
// NewClient reads credentials from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
// and AWS_SESSION_TOKEN. Set Endpoint and PathStyle for S3-compatible stores
// such as MinIO.
package publish
