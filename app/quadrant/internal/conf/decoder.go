package conf

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"gopkg.in/yaml.v3"
)

// Decoder 解析配置文件，解析前先展开 ${ENV} 形式的环境变量，
// 以便 api_key 等敏感信息不必写进配置文件
func Decoder(kv *config.KeyValue, v map[string]interface{}) error {
	expanded := []byte(os.ExpandEnv(string(kv.Value)))

	out := make(map[string]interface{})
	switch kv.Format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(expanded, &out); err != nil {
			return fmt.Errorf("decode %s: %w", kv.Key, err)
		}
	case "json":
		if err := json.Unmarshal(expanded, &out); err != nil {
			return fmt.Errorf("decode %s: %w", kv.Key, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q for %s", kv.Format, kv.Key)
	}
	for k, val := range out {
		v[k] = val
	}
	return nil
}

// Load 从文件加载启动配置并补齐默认值
func Load(path string) (*Bootstrap, func(), error) {
	c := config.New(
		config.WithSource(file.NewSource(path)),
		config.WithDecoder(Decoder),
	)
	if err := c.Load(); err != nil {
		c.Close()
		return nil, nil, err
	}

	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		c.Close()
		return nil, nil, err
	}
	bc.ApplyDefaults()

	return &bc, func() { c.Close() }, nil
}
