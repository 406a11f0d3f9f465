package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mkrol/gitfolio/internal/app"
	"github.com/mkrol/gitfolio/internal/app/mock"
	"github.com/stretchr/testify/assert"
)

func TestServiceProfileStats(t *testing.T) {
	t.Parallel()

	snapshot := &app.StatsSnapshot{
		Profile: app.Profile{
			Login: "tester",
			Name:  "Tester",
		},
		TotalStars: 8,
	}

	tests := []struct {
		name      string
		setupMock func(*mock.MockGithubClient)
		login     string
		want      *app.StatsSnapshot
		wantErr   bool
	}{
		{
			name:      "empty login",
			setupMock: func(m *mock.MockGithubClient) {},
			login:     "",
			want:      nil,
			wantErr:   true,
		},
		{
			name: "error from client",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					ProfileStats(gomock.Any(), "tester").
					Return(nil, errors.New("error"))
			},
			login:   "tester",
			want:    nil,
			wantErr: true,
		},
		{
			name: "client ok, snapshot returned",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					ProfileStats(gomock.Any(), "tester").
					Return(snapshot, nil)
			},
			login:   "tester",
			want:    snapshot,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockGithubClient(ctrl)
			tt.setupMock(client)

			service := app.NewService(client, time.Second)

			got, err := service.ProfileStats(context.Background(), tt.login)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceRepoSummaries(t *testing.T) {
	t.Parallel()

	repoA := app.RepoSummary{Name: "a", URL: "https://github.com/tester/a", Stars: 3}
	repoB := app.RepoSummary{Name: "b", URL: "https://github.com/tester/b", Stars: 1}

	tests := []struct {
		name      string
		setupMock func(*mock.MockGithubClient)
		login     string
		repoNames []string
		want      []app.RepoSummary
		wantErr   bool
	}{
		{
			name:      "empty login",
			setupMock: func(m *mock.MockGithubClient) {},
			login:     "",
			repoNames: []string{"a"},
			want:      nil,
			wantErr:   true,
		},
		{
			name:      "empty names",
			setupMock: func(m *mock.MockGithubClient) {},
			login:     "tester",
			repoNames: nil,
			want:      nil,
			wantErr:   true,
		},
		{
			name: "owner prefixes normalized to bare names",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepoSummary(gomock.Any(), "tester", "a").
					Return(&repoA, nil)
				m.EXPECT().
					RepoSummary(gomock.Any(), "tester", "b").
					Return(&repoB, nil)
			},
			login:     "tester",
			repoNames: []string{"a", "owner/b"},
			want:      []app.RepoSummary{repoA, repoB},
			wantErr:   false,
		},
		{
			name: "failed fetch excluded, order preserved",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepoSummary(gomock.Any(), "tester", "a").
					Return(&repoA, nil)
				m.EXPECT().
					RepoSummary(gomock.Any(), "tester", "missing").
					Return(nil, errors.New("not found"))
				m.EXPECT().
					RepoSummary(gomock.Any(), "tester", "b").
					Return(&repoB, nil)
			},
			login:     "tester",
			repoNames: []string{"a", "missing", "b"},
			want:      []app.RepoSummary{repoA, repoB},
			wantErr:   false,
		},
		{
			name: "all fetches failed, empty result",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepoSummary(gomock.Any(), "tester", "a").
					Return(nil, errors.New("not found"))
			},
			login:     "tester",
			repoNames: []string{"a"},
			want:      []app.RepoSummary{},
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockGithubClient(ctrl)
			tt.setupMock(client)

			service := app.NewService(client, time.Second)

			got, err := service.RepoSummaries(context.Background(), tt.login, tt.repoNames)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}
