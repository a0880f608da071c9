package awsconfig

type service struct{}

