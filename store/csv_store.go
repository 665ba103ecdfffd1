package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"HeadacheGo/models"
)

// utf8BOM 带BOM的UTF-8，保证Excel等表格工具正确识别中文
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Store 头痛记录存储接口。
// 所有修改操作都对底层文件做完整的读-改-写，
// 文件始终是两次操作之间唯一的数据来源。
type Store interface {
	Load() ([]models.Record, error)
	Save(records []models.Record) error
	Append(rec models.Record) error
	Delete(index int) error
	Replace(records []models.Record) error
	Raw() ([]byte, error)
}

// CSVStore 基于单个CSV文件的存储实现
type CSVStore struct {
	path string
	mu   sync.Mutex
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Load 读取全部记录。文件不存在视为空集而不是错误
func (s *CSVStore) Load() ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save 整表覆盖写入
func (s *CSVStore) Save(records []models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

// Append 在末尾追加一条记录
func (s *CSVStore) Append(rec models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(records, rec))
}

// Delete 按位置索引删除一条记录，其余记录保持相对顺序
func (s *CSVStore) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return models.ErrIndexOutOfRange
	}
	return s.save(append(records[:index], records[index+1:]...))
}

// Replace 用调用方提供的完整记录集替换存储内容，
// 用于整表编辑，除格式外不做校验
func (s *CSVStore) Replace(records []models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

// Raw 返回磁盘上的原始字节，供下载使用。
// 文件不存在时返回空表的编码结果
func (s *CSVStore) Raw() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return encode(nil)
	}
	if err != nil {
		return nil, errors.Wrap(err, "读取数据文件失败")
	}
	return data, nil
}

func (s *CSVStore) load() ([]models.Record, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "读取数据文件失败")
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &models.DataIntegrityError{Message: fmt.Sprintf("数据文件格式错误: %v", err)}
	}
	if len(rows) == 0 {
		return []models.Record{}, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	for _, col := range models.Columns {
		if _, ok := index[col]; !ok {
			return nil, &models.DataIntegrityError{Message: fmt.Sprintf("'%s' 列缺失，请检查数据", col)}
		}
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, err := models.RecordFromRow(row, index)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *CSVStore) save(records []models.Record) error {
	data, err := encode(records)
	if err != nil {
		return err
	}

	// 先写临时文件再重命名，调用方不会看到写到一半的文件
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".headache-*.csv")
	if err != nil {
		return errors.Wrap(err, "创建临时文件失败")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "写入数据文件失败")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "写入数据文件失败")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "保存数据文件失败")
	}
	return nil
}

func encode(records []models.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	if err := writer.Write(models.Columns); err != nil {
		return nil, errors.Wrap(err, "编码表头失败")
	}
	for _, rec := range records {
		if err := writer.Write(rec.CSVRow()); err != nil {
			return nil, errors.Wrap(err, "编码记录失败")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "编码记录失败")
	}
	return buf.Bytes(), nil
}
